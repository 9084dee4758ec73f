package gibbs

import (
	"github.com/hupe1980/topicgo/corpus"
)

// assignmentTable remembers the topic label of every token occurrence, keyed
// by document and occurrence index. Occurrence indexes restart at zero for
// each document and enumerate the document's (term, count) pairs expanded by
// count, in iteration order.
type assignmentTable struct {
	byDoc map[corpus.DocID][]TopicID
}

func newAssignmentTable() *assignmentTable {
	return &assignmentTable{byDoc: make(map[corpus.DocID][]TopicID)}
}

func (at *assignmentTable) reset() {
	at.byDoc = make(map[corpus.DocID][]TopicID)
}

// ensure allocates the label slice for doc with the given length.
func (at *assignmentTable) ensure(doc corpus.DocID, length int) {
	at.byDoc[doc] = make([]TopicID, length)
}

func (at *assignmentTable) get(doc corpus.DocID, n int) TopicID {
	return at.byDoc[doc][n]
}

func (at *assignmentTable) set(doc corpus.DocID, n int, topic TopicID) {
	at.byDoc[doc][n] = topic
}

// length returns the number of labels stored for doc, or -1 when the
// document has never been initialized.
func (at *assignmentTable) length(doc corpus.DocID) int {
	labels, ok := at.byDoc[doc]
	if !ok {
		return -1
	}

	return len(labels)
}
