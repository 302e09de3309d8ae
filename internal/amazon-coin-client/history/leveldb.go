package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	recordPrefix = []byte("rec/")
	indexPrefix  = []byte("idx/")
)

// LevelDBStore keeps records under rec/<unix-nanos>/<id> so iteration order is
// creation order, with an idx/<id> entry pointing at each record key.
type LevelDBStore struct {
	db *leveldb.DB
}

func OpenLevelDB(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open history db %s", path)
	}
	return &LevelDBStore{db: db}, nil
}

func (s *LevelDBStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func recordKey(r Record) []byte {
	return []byte(fmt.Sprintf("%s%016x/%s", recordPrefix, r.Timestamp.UnixNano(), r.ID))
}

func indexKey(id uuid.UUID) []byte {
	return append(append([]byte{}, indexPrefix...), id.String()...)
}

func (s *LevelDBStore) Put(ctx context.Context, r Record) error {
	if err := validate(r); err != nil {
		return err
	}

	key, err := s.db.Get(indexKey(r.ID), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		key = recordKey(r)
	case err != nil:
		return errors.Wrapf(err, "lookup history record %s", r.ID)
	default:
		prev, err := s.read(key)
		if err != nil {
			return err
		}
		r.Timestamp = prev.Timestamp
	}

	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encode history record")
	}
	batch := new(leveldb.Batch)
	batch.Put(key, data)
	batch.Put(indexKey(r.ID), key)
	if err := s.db.Write(batch, nil); err != nil {
		return errors.Wrapf(err, "write history record %s", r.ID)
	}
	return nil
}

func (s *LevelDBStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	key, err := s.db.Get(indexKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, errors.Wrapf(err, "lookup history record %s", id)
	}
	return s.read(key)
}

func (s *LevelDBStore) List(ctx context.Context, f Filter) ([]Record, error) {
	iter := s.db.NewIterator(util.BytesPrefix(recordPrefix), nil)
	defer iter.Release()

	var out []Record
	for ok := iter.Last(); ok; ok = iter.Prev() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var r Record
		if err := json.Unmarshal(iter.Value(), &r); err != nil {
			return nil, errors.Wrapf(err, "decode history record %s", iter.Key())
		}
		if !f.match(r) {
			continue
		}
		out = append(out, r)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate history")
	}
	return out, nil
}

func (s *LevelDBStore) read(key []byte) (Record, error) {
	data, err := s.db.Get(key, nil)
	if err != nil {
		return Record{}, errors.Wrapf(err, "read history record %s", key)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, errors.Wrapf(err, "decode history record %s", key)
	}
	return r, nil
}
