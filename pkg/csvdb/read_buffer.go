package csvdb

// readBuff hands out rows that were read up front (xlsx sheets) one by one
// like csv records. Empty rows are skipped like blank csv lines.
type readBuff struct {
	rows    [][]string
	readPos int
	values  []string
}

func newReadBuffer(rows [][]string) *readBuff {
	b := new(readBuff)
	b.rows = rows
	b.readPos = -1
	return b
}

func (b *readBuff) next() bool {
	for {
		b.readPos++
		if b.readPos >= len(b.rows) {
			b.values = nil
			return false
		}
		if len(b.rows[b.readPos]) > 0 {
			b.values = b.rows[b.readPos]
			return true
		}
	}
}
