package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrMalformed is returned by readers for syntactically invalid input.
var ErrMalformed = errors.New("malformed corpus input")

// gzipMagic is the two-byte gzip stream signature.
var gzipMagic = []byte{0x1f, 0x8b}

// maybeGunzip returns a reader that transparently decompresses r when it
// carries a gzip stream. The returned closer is nil for plain input.
func maybeGunzip(r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz, nil
	}
	return br, nil, nil
}

// ReadBagOfWords parses the UCI sparse bag-of-words format:
//
//	D        number of documents
//	W        vocabulary size
//	NNZ      number of (doc, term) pairs that follow
//	docID termID count        (1-based ids, one pair per line)
//
// Gzip-compressed input is decompressed transparently. Pair order within a
// document is preserved. Document ids missing from the file produce empty
// documents, so the corpus always has exactly D documents.
func ReadBagOfWords(r io.Reader) (*Corpus, error) {
	plain, closer, err := maybeGunzip(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	sc := bufio.NewScanner(plain)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lineNo int
	header := make([]int, 0, 3)
	for len(header) < 3 {
		line, ok := nextLine(sc, &lineNo)
		if !ok {
			return nil, scanErr(sc, lineNo)
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: line %d: header value %q", ErrMalformed, lineNo, line)
		}
		header = append(header, v)
	}
	numDocs, numTerms, nnz := header[0], header[1], header[2]

	docs := make([][]TermCount, numDocs)
	for i := 0; i < nnz; i++ {
		line, ok := nextLine(sc, &lineNo)
		if !ok {
			return nil, scanErr(sc, lineNo)
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformed, lineNo, len(fields))
		}
		doc, err1 := strconv.Atoi(fields[0])
		term, err2 := strconv.Atoi(fields[1])
		count, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
		}
		if doc < 1 || doc > numDocs {
			return nil, fmt.Errorf("%w: line %d: doc id %d outside [1,%d]", ErrMalformed, lineNo, doc, numDocs)
		}
		if term < 1 || term > numTerms {
			return nil, fmt.Errorf("%w: line %d: term id %d outside [1,%d]", ErrMalformed, lineNo, term, numTerms)
		}
		if count < 1 {
			return nil, fmt.Errorf("%w: line %d: count %d", ErrMalformed, lineNo, count)
		}

		docs[doc-1] = append(docs[doc-1], TermCount{Term: TermID(term - 1), Count: count}) //nolint:gosec
	}

	return New(numTerms, docs)
}

// ReadVocab reads a one-term-per-line vocabulary file, the companion of
// the bag-of-words format. Blank lines are skipped. Gzip input is
// decompressed transparently.
func ReadVocab(r io.Reader) ([]string, error) {
	plain, closer, err := maybeGunzip(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	sc := bufio.NewScanner(plain)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var vocab []string
	for sc.Scan() {
		term := strings.TrimSpace(sc.Text())
		if term == "" {
			continue
		}
		vocab = append(vocab, term)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return vocab, nil
}

func nextLine(sc *bufio.Scanner, lineNo *int) (string, bool) {
	for sc.Scan() {
		*lineNo++
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func scanErr(sc *bufio.Scanner, lineNo int) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
	}
	return fmt.Errorf("%w: unexpected end of input at line %d", ErrMalformed, lineNo)
}
