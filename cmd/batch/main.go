package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/internal/extractor"
	"github.com/bd-address-extractor/internal/geo"
	"github.com/bd-address-extractor/internal/ner"
)

// Offline bulk extraction: one raw address per input line, one JSON result
// per output line. Output order matches input order regardless of -c.
func main() {
	var (
		inPath     = flag.String("in", "-", "input file, one address per line ('-' for stdin)")
		outPath    = flag.String("out", "-", "output NDJSON file ('-' for stdout)")
		gazPath    = flag.String("gazetteer", "", "gazetteer corpus JSON (embedded data when empty)")
		modelPath  = flag.String("ner-model", "", "ONNX tagger model path (disabled when empty)")
		metadata   = flag.Bool("metadata", false, "include extraction metadata per result")
		timeoutSec = flag.Int("timeout", 30, "per-address timeout in seconds")
		workers    = flag.Int("c", 4, "concurrent extractions")
	)
	flag.Parse()
	if *workers < 1 {
		*workers = 1
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var kb *geo.KnowledgeBase
	if *gazPath != "" {
		kb = geo.NewKnowledgeBaseFromFile(*gazPath, logger)
	} else {
		kb = geo.NewKnowledgeBase(logger)
	}

	nerExtractor := ner.New(ner.Config{ModelPath: *modelPath}, logger)
	defer nerExtractor.Close()

	ext, err := extractor.New(extractor.Config{
		CacheSize:      10000,
		DefaultTimeout: time.Duration(*timeoutSec) * time.Second,
	}, nerExtractor, kb, logger)
	if err != nil {
		logger.Fatal("Failed to build extractor", zap.Error(err))
	}

	in, err := openInput(*inPath)
	if err != nil {
		logger.Fatal("Cannot open input", zap.Error(err))
	}
	defer in.Close()

	out, err := openOutput(*outPath)
	if err != nil {
		logger.Fatal("Cannot open output", zap.Error(err))
	}
	defer out.Close()

	opts := extractor.Options{IncludeMetadata: *metadata}
	encoder := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var total int
	var failed atomic.Int64
	start := time.Now()

	// chunks are processed by a worker pool and written back in input order;
	// a failed line keeps its slot as an empty result
	flush := func(chunk []string) {
		results := make([]*models.ExtractionResult, len(chunk))
		indexes := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < *workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indexes {
					result, err := ext.Extract(context.Background(), chunk[i], opts)
					if err != nil {
						failed.Add(1)
						logger.Warn("extraction failed",
							zap.Int("line", total-len(chunk)+i+1), zap.Error(err))
						result = models.NewEmptyResult(chunk[i])
					}
					results[i] = result
				}
			}()
		}
		for i := range chunk {
			indexes <- i
		}
		close(indexes)
		wg.Wait()

		for _, result := range results {
			if err := encoder.Encode(result); err != nil {
				logger.Fatal("Cannot write output", zap.Error(err))
			}
		}
	}

	chunk := make([]string, 0, *workers*64)
	for scanner.Scan() {
		total++
		chunk = append(chunk, scanner.Text())
		if len(chunk) == cap(chunk) {
			flush(chunk)
			chunk = chunk[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("Input read failed", zap.Error(err))
	}
	flush(chunk)

	logger.Info("Batch complete",
		zap.Int("total", total),
		zap.Int64("failed", failed.Load()),
		zap.Duration("elapsed", time.Since(start)))
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
