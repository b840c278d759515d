package movie

import (
	flatbuffers "github.com/blastbao/flatcore/flatbuffers"
)

type BookReaderT struct {
	BooksRead int32 `json:"books_read"`
}

func (t *BookReaderT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	BookReaderStart(builder)
	BookReaderAddBooksRead(builder, t.BooksRead)
	return BookReaderEnd(builder)
}

func (rcv *BookReader) UnPackTo(t *BookReaderT) (err error) {
	t.BooksRead, err = rcv.BooksRead()
	return err
}

func (rcv *BookReader) UnPack() (*BookReaderT, error) {
	if rcv == nil {
		return nil, nil
	}
	t := &BookReaderT{}
	if err := rcv.UnPackTo(t); err != nil {
		return nil, err
	}
	return t, nil
}

type BookReader struct {
	_tab flatbuffers.Table
}

func (rcv *BookReader) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BookReader) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BookReader) BooksRead() (int32, error) {
	return flatbuffers.GetIntegerSlot(&rcv._tab, 4, int32(0))
}

func BookReaderStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}
func BookReaderAddBooksRead(builder *flatbuffers.Builder, booksRead int32) {
	builder.PrependInt32Slot(0, booksRead, 0)
}
func BookReaderEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
