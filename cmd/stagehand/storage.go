package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/stageworks/screenplay/troupe"
	. "github.com/stageworks/screenplay/util/testutil"

	bolt "go.etcd.io/bbolt"
)

// shelfBucket is the bucket holding shelved playbooks (raw YAML by
// name).
const shelfBucket = "playbooks"

// MemberRecord is what the service persists about a troupe member:
// the id and where the knowledge came from.
//
// Traits are deliberately absent.  An actor's facts belong to the
// running process, not to the shelf.
type MemberRecord struct {
	// Id is the id for the member.
	Id string `json:"id,omitempty"`

	Knowledge *troupe.KnowledgeSource `json:"knowledge,omitempty" yaml:"knowledge,omitempty"`

	// Deleted indicates that this member has been dismissed.
	//
	// Yes, this flag is a hack.
	Deleted bool `json:"-" yaml:"-"`
}

// Storage is a type of persistence
type Storage struct {
	Debug    bool
	filename string
	db       *bolt.DB
}

// NewStorage takes in a filename and returns a Storage object
func NewStorage(filename string) (*Storage, error) {
	return &Storage{
		filename: filename,
	}, nil
}

// Open opens the underlying bbolt database.
func (s *Storage) Open(ctx context.Context) error {
	opts := &bolt.Options{
		Timeout: time.Second,
	}

	db, err := bolt.Open(s.filename, 0644, opts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

// Close closes the underlying bbolt database.
func (s *Storage) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) logf(format string, args ...interface{}) {
	if s == nil {
		return
	}
	if s.Debug {
		log.Printf("bbolt "+format, args...)
	}
}

// EnsureTroupe makes sure the buckets for the given troupe (and the
// playbook shelf) exist.
func (s *Storage) EnsureTroupe(ctx context.Context, tid string) error {
	if s == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(tid)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(shelfBucket))
		return err
	})
}

// RemTroupe forgets the troupe entirely.
func (s *Storage) RemTroupe(ctx context.Context, tid string) error {
	if s == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.DeleteBucket([]byte(tid))
	})
}

// GetMembers returns the persisted member records for the troupe.
func (s *Storage) GetMembers(ctx context.Context, tid string) ([]*MemberRecord, error) {
	if s == nil {
		return []*MemberRecord{}, nil
	}
	mss := make([]*MemberRecord, 0, 32)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tid))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for id, bs := c.First(); id != nil; id, bs = c.Next() {
			var ms MemberRecord
			if err := json.Unmarshal(bs, &ms); err != nil {
				return err
			}
			ms.Id = string(id)
			s.logf("GetMembers %s member %s", tid, JS(ms))
			mss = append(mss, &ms)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logf("GetMembers %s found %d members", tid, len(mss))

	if len(mss) == 0 {
		return nil, nil
	}

	return mss, nil
}

// WriteMembers records (or, for Deleted records, erases) member
// records.
func (s *Storage) WriteMembers(ctx context.Context, tid string, mss []*MemberRecord) error {
	if s == nil {
		return nil
	}

	if 0 == len(mss) {
		return nil
	}

	vals := make(map[string][]byte, len(mss))

	for _, ms := range mss {
		id := ms.Id
		if ms.Deleted {
			vals[id] = nil
		} else {
			// To save some space, remove id.
			ms = &MemberRecord{
				Knowledge: ms.Knowledge,
			}
			js, err := json.Marshal(&ms)
			if err != nil {
				return err
			}
			vals[id] = js
		}
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(tid))
		if err != nil {
			return err
		}
		for id, bs := range vals {
			var (
				key = []byte(id)
				err error
			)
			if bs == nil {
				err = b.Delete(key)
			} else {
				err = b.Put(key, bs)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ShelvePlaybook stores raw playbook YAML under the given name.
func (s *Storage) ShelvePlaybook(ctx context.Context, name string, yamlBS []byte) error {
	if s == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(shelfBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(name), yamlBS)
	})
}

// GetPlaybook returns the shelved YAML for the name, or nil if the
// shelf doesn't have it.
func (s *Storage) GetPlaybook(ctx context.Context, name string) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	var got []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(shelfBucket))
		if b == nil {
			return nil
		}
		if bs := b.Get([]byte(name)); bs != nil {
			got = make([]byte, len(bs))
			copy(got, bs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return got, nil
}
