package seqio

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
)

// WriteToFileHandle writes one record to file, one line per field.
func WriteToFileHandle(file io.Writer, rec Record) {
	_, err := fmt.Fprintf(file, "%s\n", rec.String())
	exception.PanicOnErr(err)
}

// Write writes records to the named file, gzipped if the name ends in .gz.
func Write(filename string, records []Record) {
	file := fileio.EasyCreate(filename)
	for i := range records {
		WriteToFileHandle(file, records[i])
	}
	err := file.Close()
	exception.PanicOnErr(err)
}
