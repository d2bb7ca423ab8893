package dawg

import (
	"io"
	"log"
	"os"

	"golang.org/x/exp/mmap"
)

// On-disk format: a small fixed header followed by one big-endian
// uint32 per packed cell, written in index order.
//
//	uint32 total byte size (header + cells)
//	uint32 word count
//	uint32 node count
//	node count * uint32 packed cells
const headerLength = 4 * 3

func writeUint32(w io.Writer, v uint32) error {
	_, err := w.Write([]byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	})
	return err
}

func readUint32At(r io.ReaderAt, at int64) (uint32, error) {
	var buf [4]byte
	if _, err := r.ReadAt(buf[:], at); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// Write serializes the Dawg to w, returning the number of bytes written.
func (d *Dawg) Write(w io.Writer) (int64, error) {
	size := int64(headerLength + d.cells.len()*4)

	if err := writeUint32(w, uint32(size)); err != nil {
		return 0, err
	}
	if err := writeUint32(w, uint32(d.wordCount)); err != nil {
		return 0, err
	}
	if err := writeUint32(w, uint32(d.cells.len())); err != nil {
		return 0, err
	}
	for i := 0; i < d.cells.len(); i++ {
		if err := writeUint32(w, uint32(d.cells.cell(int32(i)))); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// Save writes the Dawg to filename, creating or truncating it.
func (d *Dawg) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return d.Write(f)
}

// Read reconstructs a Dawg from r starting at offset, copying every
// cell into memory. Use Load for the common on-disk case, or LoadMmap
// to back the cell array with the file pages directly instead.
func Read(r io.ReaderAt, offset int64) (*Dawg, error) {
	wordCount, err := readUint32At(r, offset+4)
	if err != nil {
		return nil, newFormatError("reading word count", err)
	}
	nodeCount, err := readUint32At(r, offset+8)
	if err != nil {
		return nil, newFormatError("reading node count", err)
	}

	cells := make([]PackedCell, nodeCount)
	base := offset + headerLength
	for i := range cells {
		v, err := readUint32At(r, base+int64(i)*4)
		if err != nil {
			return nil, newFormatError("reading packed cell", err)
		}
		cells[i] = PackedCell(v)
	}

	return &Dawg{cells: sliceCells(cells), wordCount: int(wordCount)}, nil
}

// Load reads a Dawg previously written with Save or Write.
func Load(filename string) (*Dawg, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, 0)
}

// mmapCells backs cellSource directly with a memory-mapped file: cell
// reads go straight to the mapped pages, so opening a large dictionary
// costs one mmap(2) call rather than a pass over every node.
type mmapCells struct {
	r         *mmap.ReaderAt
	nodeCount int
}

func (m *mmapCells) cell(i int32) PackedCell {
	v, err := readUint32At(m.r, int64(headerLength)+int64(i)*4)
	if err != nil {
		log.Panic(err)
	}
	return PackedCell(v)
}

func (m *mmapCells) len() int { return m.nodeCount }

// LoadMmap maps filename into memory and decodes its header, but leaves
// the packed cells on the mapped pages rather than copying them, so
// opening a large dictionary is near-instant and multiple processes can
// share the backing pages. The returned Dawg keeps the mapping open
// until the process exits; there is deliberately no Close, mirroring
// the read-only, process-lifetime nature of a loaded dictionary.
func LoadMmap(filename string) (*Dawg, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}

	nodeCount, err := readUint32At(r, 8)
	if err != nil {
		return nil, newFormatError("reading node count", err)
	}
	wordCount, err := readUint32At(r, 4)
	if err != nil {
		return nil, newFormatError("reading word count", err)
	}

	return &Dawg{
		cells:     &mmapCells{r: r, nodeCount: int(nodeCount)},
		wordCount: int(wordCount),
	}, nil
}
