package fontregistry

import (
	"context"

	"github.com/npillmayer/textcaret/core/font"
)

// TypeCasePromise delivers a type case which is loaded in the background.
// A promise is meant to be awaited once.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
	Await(ctx context.Context) (*font.TypeCase, error)
}

type typeCasePlusErr struct {
	typecase *font.TypeCase
	err      error
}

type typeCaseLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader typeCaseLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

func (loader typeCaseLoader) Await(ctx context.Context) (*font.TypeCase, error) {
	return loader.await(ctx)
}

// ResolveTypeCase locates a system font, loads it and prepares a type case
// of a given size, without blocking the caller. The font is stored under
// SystemFontKey(name). An empty name resolves to the fallback font.
//
// If the font cannot be found, the promise delivers a type case of the
// fallback font together with an EMISSING error.
func (fr *Registry) ResolveTypeCase(name string, size float32) TypeCasePromise {
	ch := make(chan typeCasePlusErr, 1)
	go func(ch chan<- typeCasePlusErr) {
		defer close(ch)
		result := typeCasePlusErr{}
		var key string
		if name != "" {
			key, result.err = fr.LoadSystemFont(name)
		}
		var err error
		result.typecase, err = fr.TypeCase(key, size)
		if result.err == nil {
			result.err = err
		}
		tracer().Debugf("resolved type case for %q at %.2f", name, size)
		ch <- result
	}(ch)
	return typeCaseLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.typecase, r.err
			}
		},
	}
}
