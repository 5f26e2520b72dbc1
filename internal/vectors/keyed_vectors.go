// Package vectors provides similarity oracles over normalized keys.
package vectors

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mariaschitik/ru-pedantle/internal/errors"
	"github.com/mariaschitik/ru-pedantle/model"
)

// KeyedVectors holds unit-length word embeddings addressed by "base_CATEGORY" keys.
// It is read-only after loading and safe for concurrent use.
type KeyedVectors struct {
	dim     int
	vectors map[string][]float32
}

// LoadWord2VecText parses the word2vec text format:
//
//	<count> <dim>
//	<key> <v1> ... <vdim>
//
// The header line is optional; without it the dimension is taken from the first vector.
func LoadWord2VecText(r io.Reader) (*KeyedVectors, error) {
	kv := &KeyedVectors{vectors: make(map[string][]float32)}

	reader := bufio.NewReaderSize(r, 1<<20)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read vectors: %w", readErr)
		}
		lineNo++
		fields := strings.Fields(line)
		if len(fields) > 0 {
			if lineNo == 1 && len(fields) == 2 && isHeader(fields) {
				dim, _ := strconv.Atoi(fields[1])
				kv.dim = dim
			} else if err := kv.addLine(fields, lineNo); err != nil {
				return nil, err
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	return kv, nil
}

// LoadWord2VecTextFile opens path and parses it with LoadWord2VecText.
func LoadWord2VecTextFile(path string) (*KeyedVectors, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open vectors %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("failed to close vectors file")
		}
	}()

	kv, err := LoadWord2VecText(file)
	if err != nil {
		return nil, fmt.Errorf("vectors %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("keys", kv.Len()).Int("dim", kv.dim).Msg("loaded vector model")
	return kv, nil
}

func isHeader(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}

func (kv *KeyedVectors) addLine(fields []string, lineNo int) error {
	if kv.dim == 0 {
		kv.dim = len(fields) - 1
	}
	if kv.dim <= 0 || len(fields) != kv.dim+1 {
		return fmt.Errorf("line %d: expected key and %d components, got %d fields", lineNo, kv.dim, len(fields))
	}

	vec := make([]float32, kv.dim)
	var norm float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return fmt.Errorf("line %d: component %d: %w", lineNo, i+1, err)
		}
		vec[i] = float32(v)
		norm += v * v
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	kv.vectors[fields[0]] = vec
	return nil
}

// Len returns the vocabulary size.
func (kv *KeyedVectors) Len() int { return len(kv.vectors) }

// Dim returns the vector dimension.
func (kv *KeyedVectors) Dim() int { return kv.dim }

// Contains implements services.SimilarityOracle.
func (kv *KeyedVectors) Contains(key model.NormalizedKey) bool {
	_, ok := kv.vectors[key.String()]
	return ok
}

// Similarity implements services.SimilarityOracle with cosine similarity.
func (kv *KeyedVectors) Similarity(a, b model.NormalizedKey) (float64, error) {
	va, ok := kv.vectors[a.String()]
	if !ok {
		return 0, errors.NewKeyNotFoundError(a.String())
	}
	vb, ok := kv.vectors[b.String()]
	if !ok {
		return 0, errors.NewKeyNotFoundError(b.String())
	}

	var dot float64
	for i := range va {
		dot += float64(va[i]) * float64(vb[i])
	}
	return math.Max(-1, math.Min(1, dot)), nil
}
