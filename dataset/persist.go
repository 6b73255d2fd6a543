package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"encoding/gob"
	"path/filepath"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/rs/zerolog"

	adminerrors "github.com/RobertLJordan/ak-energy-admin/errors"
)

const (
	// BinaryExt is the suffix of the compressed binary serialization.
	BinaryExt = ".gob"

	// CSVExt is the suffix of the plain-text delimited serialization.
	CSVExt = ".csv"
)

// Persister writes datasets to a filesystem in two formats: a gzip-compressed
// gob stream and a CSV file, both at a shared base path.
//
// The two writes use the same in-memory snapshot but are not atomic as a pair:
// a crash between them leaves one file updated and the other stale.
type Persister struct {
	fs  fs.Filesystem
	log zerolog.Logger
}

// NewPersister creates a Persister writing through fsys and logging to log.
func NewPersister(fsys fs.Filesystem, log zerolog.Logger) *Persister {
	return &Persister{fs: fsys, log: log}
}

// Persist writes ds to basePath+".gob" (gzip-compressed gob) and
// basePath+".csv". Row order is identical in both outputs.
func (p *Persister) Persist(ds *Dataset, basePath string) error {
	p.log.Info().
		Str("base", basePath).
		Int("rows", ds.NumRows()).
		Msgf("saving dataset to %s%s and %s", basePath, BinaryExt, CSVExt)

	if dir := filepath.Dir(basePath); dir != "." {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return adminerrors.NewError("persist", err).WithKey(basePath)
		}
	}

	if err := p.writeBinary(ds, basePath+BinaryExt); err != nil {
		return err
	}
	return p.writeCSV(ds, basePath+CSVExt)
}

// Load reads a dataset previously written by Persist from basePath+".gob".
func (p *Persister) Load(basePath string) (*Dataset, error) {
	path := basePath + BinaryExt
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, adminerrors.NewError("load", adminerrors.ErrNotFound).
			WithKey(path).
			WithMessage(err.Error())
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, adminerrors.NewError("load", err).WithKey(path)
	}
	defer zr.Close()

	var ds Dataset
	if err := gob.NewDecoder(zr).Decode(&ds); err != nil {
		return nil, adminerrors.NewError("load", err).WithKey(path)
	}
	return &ds, nil
}

func (p *Persister) writeBinary(ds *Dataset, path string) error {
	f, err := p.fs.Create(path)
	if err != nil {
		return adminerrors.NewError("persist", err).WithKey(path)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := gob.NewEncoder(zw).Encode(ds); err != nil {
		zw.Close()
		return adminerrors.NewError("persist", err).WithKey(path)
	}
	if err := zw.Close(); err != nil {
		return adminerrors.NewError("persist", err).WithKey(path)
	}
	return nil
}

func (p *Persister) writeCSV(ds *Dataset, path string) error {
	f, err := p.fs.Create(path)
	if err != nil {
		return adminerrors.NewError("persist", err).WithKey(path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.Columns); err != nil {
		return adminerrors.NewError("persist", err).WithKey(path)
	}
	record := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for i, cell := range row {
			record[i] = cell.String()
		}
		if err := w.Write(record); err != nil {
			return adminerrors.NewError("persist", err).WithKey(path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return adminerrors.NewError("persist", err).WithKey(path)
	}
	return nil
}
