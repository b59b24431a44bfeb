package describe

import (
	"bufio"
	"encoding/csv"
	"os"
)

var header = []string{
	"original_column_name",
	"column_name",
	"column_description",
	"data_format",
	"value_description",
}

// utf8BOM lets spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeCSV writes the descriptors to path, BOM first, header included.
func writeCSV(path string, cols []ColumnDescriptor) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if _, err := bw.Write(utf8BOM); err != nil {
		f.Close()
		return err
	}

	w := csv.NewWriter(bw)
	rows := make([][]string, 0, len(cols)+1)
	rows = append(rows, header)
	for _, c := range cols {
		rows = append(rows, c.record())
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
