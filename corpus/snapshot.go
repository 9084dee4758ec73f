package corpus

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/pierrec/lz4/v4"
)

var (
	// ErrInvalidSnapshot is returned when snapshot data is corrupt.
	ErrInvalidSnapshot = errors.New("invalid corpus snapshot")

	// ErrIncompatibleSnapshotVersion is returned when the snapshot version
	// is not supported.
	ErrIncompatibleSnapshotVersion = errors.New("incompatible corpus snapshot version")
)

var snapshotMagic = [4]byte{'T', 'G', 'C', 'O'}

const snapshotVersion uint8 = 1

// maxSnapshotTermLen bounds label allocation when reading untrusted input.
const maxSnapshotTermLen = 1 << 20

// SaveTo writes the corpus as a binary snapshot: a plain magic+version
// header followed by an LZ4-framed little-endian body (vocabulary, then
// documents). The LZ4 frame carries its own content checksum.
func (c *Corpus) SaveTo(w io.Writer) error {
	if _, err := w.Write(snapshotMagic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{snapshotVersion}); err != nil {
		return err
	}

	zw := lz4.NewWriter(w)
	bw := bufio.NewWriter(zw)

	if err := c.encodeBody(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	return zw.Close()
}

func (c *Corpus) encodeBody(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(c.numTerms)); err != nil { //nolint:gosec
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(c.docs))); err != nil { //nolint:gosec
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(c.vocab))); err != nil { //nolint:gosec
		return err
	}
	for _, term := range c.vocab {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(term))); err != nil { //nolint:gosec
			return err
		}
		if _, err := io.WriteString(w, term); err != nil {
			return err
		}
	}

	for i := range c.docs {
		counts := c.docs[i].counts
		if err := binary.Write(w, binary.LittleEndian, uint32(len(counts))); err != nil { //nolint:gosec
			return err
		}
		for _, tc := range counts {
			if tc.Count > math.MaxUint32 {
				return fmt.Errorf("%w: doc %d term %d count %d overflows snapshot encoding", ErrInvalidSnapshot, i, tc.Term, tc.Count)
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(tc.Term)); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(tc.Count)); err != nil { //nolint:gosec
				return err
			}
		}
	}

	return nil
}

// Load reads a snapshot written by SaveTo.
func Load(r io.Reader) (*Corpus, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if !bytes.Equal(magic[:], snapshotMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, magic)
	}

	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if version[0] != snapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIncompatibleSnapshotVersion, version[0], snapshotVersion)
	}

	br := bufio.NewReader(lz4.NewReader(r))

	var numTerms, numDocs, vocabCount uint32
	if err := readU32(br, &numTerms); err != nil {
		return nil, err
	}
	if err := readU32(br, &numDocs); err != nil {
		return nil, err
	}
	if err := readU32(br, &vocabCount); err != nil {
		return nil, err
	}
	if vocabCount != 0 && vocabCount != numTerms {
		return nil, fmt.Errorf("%w: vocabulary has %d labels for %d terms", ErrInvalidSnapshot, vocabCount, numTerms)
	}

	var vocab []string
	for i := uint32(0); i < vocabCount; i++ {
		term, err := readString(br)
		if err != nil {
			return nil, err
		}
		vocab = append(vocab, term)
	}

	docs := make([][]TermCount, numDocs)
	for d := uint32(0); d < numDocs; d++ {
		var pairCount uint32
		if err := readU32(br, &pairCount); err != nil {
			return nil, err
		}
		counts := make([]TermCount, 0, pairCount)
		for p := uint32(0); p < pairCount; p++ {
			var term, count uint32
			if err := readU32(br, &term); err != nil {
				return nil, err
			}
			if err := readU32(br, &count); err != nil {
				return nil, err
			}
			counts = append(counts, TermCount{Term: TermID(term), Count: int(count)})
		}
		docs[d] = counts
	}

	c, err := New(int(numTerms), docs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if vocab != nil {
		if err := c.SetVocab(vocab); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}

	return c, nil
}

func readU32(r io.Reader, v *uint32) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return nil
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := readU32(r, &n); err != nil {
		return "", err
	}
	if n > maxSnapshotTermLen {
		return "", fmt.Errorf("%w: term label of %d bytes", ErrInvalidSnapshot, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return string(buf), nil
}
