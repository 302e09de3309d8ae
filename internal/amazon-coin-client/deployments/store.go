package deployments

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/securefile"
)

var ErrNotFound = errors.New("deployment record not found")

// Store reads and writes deployment records in a single directory.
type Store struct {
	dir      string
	validate *validator.Validate
}

func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("deployments dir must not be empty")
	}
	return &Store{
		dir:      dir,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Path(network string) string {
	return filepath.Join(s.dir, strings.TrimSpace(network)+constants.DeploymentFileSuffix)
}

func (s *Store) Validate(rec Record) error {
	if err := s.validate.Struct(rec); err != nil {
		return errors.Wrapf(err, "invalid deployment record for %q", rec.Network)
	}
	return nil
}

// Load reads every record in the directory, keyed by lowercased network
// name. A missing directory yields an empty map.
func (s *Store) Load(ctx context.Context) (map[string]Record, error) {
	_ = ctx

	out := map[string]Record{}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return nil, errors.Wrap(err, "read deployments dir")
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), constants.DeploymentFileSuffix) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())

		rec, err := securefile.ReadJSON[Record](path)
		if err != nil {
			log.Warn("skipping unreadable deployment record", "path", path, "error", err.Error())
			continue
		}
		if rec.Network == "" {
			rec.Network = strings.TrimSuffix(e.Name(), constants.DeploymentFileSuffix)
		}
		if err := s.Validate(rec); err != nil {
			// skip invalid entries rather than bricking startup
			log.Warn("skipping invalid deployment record", "path", path, "error", err.Error())
			continue
		}
		out[normalizeNetworkKey(rec.Network)] = rec
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, network string) (Record, error) {
	_ = ctx

	path := s.Path(network)
	if !securefile.Exists(path) {
		return Record{}, errors.Wrapf(ErrNotFound, "network %q", network)
	}
	rec, err := securefile.ReadJSON[Record](path)
	if err != nil {
		return Record{}, err
	}
	if err := s.Validate(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Store) Save(ctx context.Context, rec Record) error {
	_ = ctx

	if err := s.Validate(rec); err != nil {
		return err
	}
	return securefile.WriteJSON(s.Path(rec.Network), rec)
}

// Networks lists the network names with a record on disk, sorted.
func (s *Store) Networks(ctx context.Context) ([]string, error) {
	recs, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(recs))
	for k := range recs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}
