package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/interpreters"
	"github.com/stageworks/screenplay/playbook"
	"github.com/stageworks/screenplay/troupe"
	. "github.com/stageworks/screenplay/util/testutil"
)

// Service drives a troupe of actors on behalf of remote clients.
//
// Knowledge comes from a playbook shelf (storage), a playbook
// directory, or inline sources in operations.  The service persists
// member ids and knowledge sources only.  Traits are never written
// out; an actor's facts live and die with the process.
type Service struct {
	Errors  chan interface{} // Should be error
	Tracing bool

	ops chan interface{}

	interpreters core.InterpretersMap
	troupeName   string
	troupe       *troupe.Troupe
	playbookDir  string
	store        *Storage

	// performMu serializes invocations.  The troupe's own lock only
	// protects the member table; an actor isn't safe for concurrent
	// mutation.
	performMu sync.Mutex
}

func (s *Service) trf(format string, args ...interface{}) {
	if !s.Tracing {
		return
	}
	log.Printf("trace "+format, args...)
}

func NewService(ctx context.Context, playbookDir, dbFile string) (*Service, error) {

	troupeName := "stage"

	var store *Storage
	if dbFile != "" {
		var err error

		if store, err = NewStorage(dbFile); err != nil {
			return nil, err
		}

		if err = store.Open(ctx); err != nil {
			return nil, err
		}

		go func() {
			<-ctx.Done()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				log.Printf("Service.store.Close error %s", err)
				// Race if we try to use s.Errors.
			}
		}()
	}

	s := Service{
		troupeName:   troupeName,
		playbookDir:  playbookDir,
		troupe:       troupe.NewTroupe(troupeName),
		store:        store,
		interpreters: interpreters.Standard(),
	}

	if store != nil {
		if err := store.EnsureTroupe(ctx, troupeName); err != nil {
			return nil, err
		}

		// Recast the persisted members.  Their knowledge sources
		// survived; their traits didn't.
		mss, err := store.GetMembers(ctx, troupeName)
		if err != nil {
			return nil, err
		}
		for _, ms := range mss {
			if _, err := s.troupe.Cast(ctx, ms.Id, ms.Knowledge, &s, s.interpreters); err != nil {
				log.Printf("Service warning: couldn't recast '%s': %s", ms.Id, err)
			}
		}
	}

	return &s, nil
}

func (s *Service) op(ctx context.Context, x interface{}) {
	if s.ops != nil {
		select {
		case s.ops <- Copy(x):
		default:
			log.Printf("Service ops chan blocked")
		}
	}
}

// FindPlaybook resolves a named knowledge source: first the shelf in
// storage, then the playbook directory.
func (s *Service) FindPlaybook(ctx context.Context, src *troupe.KnowledgeSource) (*playbook.Playbook, error) {

	if src.Name == "" {
		return nil, fmt.Errorf("unsupported KnowledgeSource %s: needs name", JS(src))
	}

	if s.store != nil {
		bs, err := s.store.GetPlaybook(ctx, src.Name)
		if err != nil {
			return nil, err
		}
		if bs != nil {
			return playbook.Load(bs)
		}
	}

	return playbook.LoadFile(s.playbookDir + "/" + src.Name + ".yaml")
}

// Cast creates a member from the given knowledge source and records
// it in storage.
func (s *Service) Cast(ctx context.Context, id string, ks *troupe.KnowledgeSource) error {
	s.trf("Service.Cast %s %s", id, JS(ks))

	m, err := s.troupe.Cast(ctx, id, ks, s, s.interpreters)
	if err != nil {
		return err
	}

	if s.store == nil {
		return nil
	}
	ms := MemberRecord{
		Id:        m.Id,
		Knowledge: m.Knowledge,
	}
	return s.store.WriteMembers(ctx, s.troupeName, []*MemberRecord{&ms})
}

// Dismiss removes the member from the troupe and from storage.
func (s *Service) Dismiss(ctx context.Context, id string) error {
	s.trf("Service.Dismiss %s", id)

	s.troupe.Remove(id)

	if s.store == nil {
		return nil
	}
	ms := MemberRecord{
		Id:      id,
		Deleted: true,
	}
	return s.store.WriteMembers(ctx, s.troupeName, []*MemberRecord{&ms})
}

// Perform routes one invocation to a member's actor.
//
// Mode "call" invokes an interaction, "check" a condition, "can" an
// ability (the result is the actor's traits afterwards), and "say"
// dispatches through the member's sayings with positional args.
func (s *Service) Perform(ctx context.Context, id, mode, name string, kwargs core.Args, sayArgs []interface{}) (interface{}, error) {
	s.trf("Service.Perform %s %s %s %s", id, mode, name, JS(kwargs))

	m, have := s.troupe.Member(id)
	if !have {
		return nil, fmt.Errorf(`no member "%s"`, id)
	}

	s.performMu.Lock()
	defer s.performMu.Unlock()

	actor := m.Actor

	if mode == "say" {
		return actor.Say(ctx, name, sayArgs...)
	}

	var bucket *core.Bucket
	switch mode {
	case "call":
		bucket = actor.Interactions
	case "check":
		bucket = actor.Conditions
	case "can":
		bucket = actor.Abilities
	default:
		return nil, fmt.Errorf(`unknown mode "%s"`, mode)
	}

	c, have := bucket.Get(name)
	if !have {
		return nil, fmt.Errorf(`member "%s" doesn't know "%s" (mode %s)`, id, name, mode)
	}

	switch mode {
	case "can":
		if err := actor.Can(ctx, c, kwargs); err != nil {
			return nil, err
		}
		return actor.Traits.Map(), nil
	case "check":
		return actor.Check(ctx, c, kwargs)
	default:
		return actor.Call(ctx, c, kwargs)
	}
}

func (s *Service) err(err error) {
	if s.Errors != nil {
		s.Errors <- err
	} else {
		log.Println(err)
	}
}
