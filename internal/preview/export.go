// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/internal/parallel"
	"github.com/gogpu/isovt/object"
)

// Drawable returns the IDs of all objects that render to a non-empty
// image, in ascending order.
func (p *Preview) Drawable() []object.ID {
	var ids []object.ID
	for _, id := range p.ws.IDs() {
		r, err := p.Renderer(id)
		if err != nil {
			continue
		}
		if w, h := r.Size(); w > 0 && h > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Export writes <id>.png into dir for every drawable object, using up to
// workers goroutines. It returns the written files in ID order.
func (p *Preview) Export(ctx context.Context, dir string, workers int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "preview: export")
	}

	ids := p.Drawable()
	files := make([]string, len(ids))
	jobs := make([]parallel.Job, len(ids))
	for i, id := range ids {
		jobs[i] = func(context.Context) error {
			name := filepath.Join(dir, strconv.FormatUint(uint64(id), 10)+".png")
			b, err := p.PNG(id)
			if err != nil {
				return err
			}
			if err := os.WriteFile(name, b, 0o644); err != nil {
				return errors.Wrapf(err, "preview: export object %d", id)
			}
			files[i] = name
			return nil
		}
	}

	if err := parallel.NewPool(workers).Run(ctx, jobs); err != nil {
		return nil, err
	}
	isovt.Logger().Info("preview: exported", "dir", dir, "images", len(files))
	return files, nil
}
