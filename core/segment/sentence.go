package segment

import "log/slog"

// Sentence is one segmented sentence. ID is 1-based when indexing is
// enabled and 0 when it is not. A Sentence is immutable once created.
type Sentence struct {
	Text string `json:"text"`
	ID   int    `json:"id,omitempty"`
}

// Logger receives one diagnostic record per emitted sentence. Failures in
// the sink never abort segmentation.
type Logger interface {
	Record(event string, id int, text string)
}

// slogRecorder is the default Logger, emitting debug records through slog.
type slogRecorder struct {
	l *slog.Logger
}

func (r slogRecorder) Record(event string, id int, text string) {
	if id > 0 {
		r.l.Debug(event, "id", id, "text", text)
		return
	}
	r.l.Debug(event, "text", text)
}

// sentenceFactory wraps trimmed, non-empty spans into Sentence values,
// assigning the next sequential id only when indexing is enabled. The id
// counter starts at 1 per call and is never consumed by discarded spans.
type sentenceFactory struct {
	indexing bool
	next     int
	logger   Logger
}

func newSentenceFactory(indexing bool, logger Logger) *sentenceFactory {
	if logger == nil {
		logger = slogRecorder{l: slog.Default()}
	}
	return &sentenceFactory{indexing: indexing, next: 1, logger: logger}
}

func (f *sentenceFactory) make(text string) Sentence {
	s := Sentence{Text: text}
	if f.indexing {
		s.ID = f.next
		f.next++
	}
	f.record(s)
	return s
}

// record shields the scan loop from a misbehaving log sink.
func (f *sentenceFactory) record(s Sentence) {
	defer func() { _ = recover() }()
	f.logger.Record("sentence_emitted", s.ID, s.Text)
}
