package registry

import (
	"bytes"
	"path"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/typedef"
)

// RegisterCatalogDir registers every YAML catalog (*.yaml or *.yml) found
// directly inside dir, in lexical file name order.
//
// Each file is registered atomically, so a file may reference definitions
// from files that sort before it. Loading stops at the first failing file;
// the returned definitions are those registered up to that point and the
// error is tagged with the offending "file".
func (r *Registry) RegisterCatalogDir(fsys billy.Filesystem, dir string) ([]typedef.TypeDefinition, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.WithTag(
			errors.Wrap(err, errors.NotFound, "failed to read catalog directory"),
			"dir", dir,
		)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".yaml", ".yml":
			files = append(files, e.Name())
		}
	}
	slices.Sort(files)

	var all []typedef.TypeDefinition
	for _, name := range files {
		file := fsys.Join(dir, name)
		data, err := util.ReadFile(fsys, file)
		if err != nil {
			return all, errors.WithTag(
				errors.Wrap(err, errors.InternalError, "failed to read catalog file"),
				"file", file,
			)
		}

		defs, err := r.RegisterCatalog(bytes.NewReader(data))
		if err != nil {
			return all, errors.WithTag(err, "file", file)
		}
		r.logger.Debug("registered catalog file",
			zap.String("file", file),
			zap.Int("definitions", len(defs)),
		)
		all = append(all, defs...)
	}
	return all, nil
}
