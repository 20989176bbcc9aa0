package main

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"io"
)

// Serialize writes data in a fixed binary format. data must have a fixed
// size (see encoding/binary): numbers, bools, arrays and structs made of
// those.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	for i := range s {
		Serialize(w, s[i])
	}
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	for i := range *s {
		Deserialize(r, &(*s)[i])
	}
}

func SerializeBytes(w io.Writer, data []byte) {
	Serialize(w, int64(len(data)))
	_, err := w.Write(data)
	Check(err)
}

func DeserializeBytes(r io.Reader) []byte {
	var n int64
	Deserialize(r, &n)
	data := make([]byte, n)
	_, err := io.ReadFull(r, data)
	Check(err)
	return data
}

// Zip compresses data into a zip archive containing a single file.
func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	f, err := zw.Create("data")
	Check(err)
	_, err = f.Write(data)
	Check(err)
	Check(zw.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	Check(err)
	if len(zr.File) != 1 {
		panic("expected a zip archive with exactly one file")
	}
	f, err := zr.File[0].Open()
	Check(err)
	defer func(f io.ReadCloser) { Check(f.Close()) }(f)
	unzipped, err := io.ReadAll(f)
	Check(err)
	return unzipped
}
