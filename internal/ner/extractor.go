// Package ner runs the trained sequence-labeling model over normalized
// address text. The model is a capability, not a requirement: when it
// cannot be loaded the extractor reports unavailable and the pipeline
// degrades to the other sources.
package ner

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"os"
	"strings"
	"sync"

	onnxrt "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
)

// Tokenizer contract the model was trained with: lowercase whitespace
// tokens hashed into a fixed id space.
const (
	vocabSize = 30522
	padID     = 0
)

// Config for the tagger session.
type Config struct {
	ModelPath   string
	LibraryPath string // optional explicit libonnxruntime path
	NumThreads  int
	MaxSeqLen   int // default 64
}

// Extractor holds the ONNX session. Safe for concurrent use; the session
// run is serialized by a mutex since sessions are not goroutine-safe.
type Extractor struct {
	cfg     Config
	session *onnxrt.DynamicAdvancedSession
	mu      sync.Mutex
	logger  *zap.Logger
}

// New opens the model. A missing or unloadable model is not an error:
// the returned extractor simply reports unavailable.
func New(cfg Config, logger *zap.Logger) *Extractor {
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = 64
	}
	e := &Extractor{cfg: cfg, logger: logger}

	if cfg.ModelPath == "" {
		logger.Info("ner model not configured, extractor disabled")
		return e
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		logger.Warn("ner model missing, extractor disabled",
			zap.String("path", cfg.ModelPath), zap.Error(err))
		return e
	}
	sess, err := createSession(cfg)
	if err != nil {
		logger.Warn("ner session failed, extractor disabled", zap.Error(err))
		return e
	}
	e.session = sess
	logger.Info("ner model loaded", zap.String("path", cfg.ModelPath))
	return e
}

// IsAvailable health check; failures during Extract also flip this off.
func (e *Extractor) IsAvailable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil
}

// Close releases the session.
func (e *Extractor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	err := e.session.Destroy()
	e.session = nil
	return err
}

// Extract tags the normalized text and returns span candidates with
// model-derived confidences. Honors ctx: inference runs on its own
// goroutine and the call returns ctx.Err() on expiry (the run itself
// finishes in the background and is discarded).
func (e *Extractor) Extract(ctx context.Context, text string) ([]models.Candidate, error) {
	if !e.IsAvailable() {
		return nil, fmt.Errorf("ner model unavailable")
	}
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > e.cfg.MaxSeqLen {
		tokens = tokens[:e.cfg.MaxSeqLen]
	}

	type inferenceOut struct {
		probs [][]float64
		err   error
	}
	ch := make(chan inferenceOut, 1)
	go func() {
		probs, err := e.runInference(tokens)
		ch <- inferenceOut{probs, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-ch:
		if out.err != nil {
			return nil, out.err
		}
		return decode(text, tokens, out.probs), nil
	}
}

type token struct {
	text  string
	start int
	end   int
}

func tokenize(text string) []token {
	var out []token
	i := 0
	for i < len(text) {
		if text[i] == ' ' {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] != ' ' {
			j++
		}
		out = append(out, token{text: text[i:j], start: i, end: j})
		i = j
	}
	return out
}

func tokenID(t string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(t)))
	// id 0 is the pad token
	return int64(h.Sum32()%uint32(vocabSize-1)) + 1
}

// runInference feeds one padded sequence and returns per-token label
// probabilities.
func (e *Extractor) runInference(tokens []token) ([][]float64, error) {
	seqLen := e.cfg.MaxSeqLen
	ids := make([]int64, seqLen)
	for i := range ids {
		ids[i] = padID
	}
	for i, t := range tokens {
		ids[i] = tokenID(t.text)
	}

	inputTensor, err := onnxrt.NewTensor(onnxrt.NewShape(1, int64(seqLen)), ids)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer func() { _ = inputTensor.Destroy() }()

	e.mu.Lock()
	session := e.session
	if session == nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("ner model unavailable")
	}
	outputs := []onnxrt.Value{nil}
	err = session.Run([]onnxrt.Value{inputTensor}, outputs)
	e.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	defer func() {
		for _, o := range outputs {
			if o != nil {
				_ = o.Destroy()
			}
		}
	}()

	floatTensor, ok := outputs[0].(*onnxrt.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("expected float32 tensor, got %T", outputs[0])
	}
	logits := floatTensor.GetData()
	numLabels := NumLabels()
	if len(logits) < len(tokens)*numLabels {
		return nil, fmt.Errorf("short model output: %d values", len(logits))
	}

	probs := make([][]float64, len(tokens))
	for i := range tokens {
		row := logits[i*numLabels : (i+1)*numLabels]
		probs[i] = softmax(row)
	}
	return probs, nil
}

func softmax(row []float32) []float64 {
	maxV := row[0]
	for _, v := range row[1:] {
		if v > maxV {
			maxV = v
		}
	}
	out := make([]float64, len(row))
	var sum float64
	for i, v := range row {
		out[i] = math.Exp(float64(v - maxV))
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// decode greedy BIO decoding: contiguous B/I runs of one component become
// a single candidate whose confidence is the mean token probability.
func decode(text string, tokens []token, probs [][]float64) []models.Candidate {
	var out []models.Candidate

	var cur models.AddressComponent
	var curStart, curEnd int
	var curProbs []float64

	flush := func() {
		if cur == "" || len(curProbs) == 0 {
			cur = ""
			curProbs = nil
			return
		}
		var sum float64
		for _, p := range curProbs {
			sum += p
		}
		conf := sum / float64(len(curProbs))
		out = append(out, models.Candidate{
			Component:  cur,
			Value:      text[curStart:curEnd],
			Span:       &models.Span{Start: curStart, End: curEnd},
			Confidence: conf,
			Source:     models.SourceNER,
		})
		cur = ""
		curProbs = nil
	}

	for i, t := range tokens {
		best, bestP := 0, probs[i][0]
		for l := 1; l < len(probs[i]); l++ {
			if probs[i][l] > bestP {
				best, bestP = l, probs[i][l]
			}
		}
		component, begin, ok := splitLabel(best)
		switch {
		case !ok:
			flush()
		case begin || component != cur:
			flush()
			cur = component
			curStart, curEnd = t.start, t.end
			curProbs = append(curProbs, bestP)
		default:
			curEnd = t.end
			curProbs = append(curProbs, bestP)
		}
	}
	flush()
	return out
}
