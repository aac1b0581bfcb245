package pdf

import (
	"fmt"

	"willowpack/estimator/internal/domain/quote"
	"willowpack/estimator/internal/domain/quote/pdf/gofpdf"
	"willowpack/estimator/internal/domain/quote/pdf/maroto"
)

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}

const (
	RendererGofpdf = "gofpdf"
	RendererMaroto = "maroto"
)

func New(renderer, fontDir string) (Generator, error) {
	switch renderer {
	case "", RendererGofpdf:
		return gofpdf.New(fontDir), nil
	case RendererMaroto:
		return maroto.New(), nil
	}
	return nil, fmt.Errorf("unknown pdf renderer %q", renderer)
}
