package main

import (
	"context"
	"fmt"

	"github.com/stageworks/screenplay/core"
	"github.com/stageworks/screenplay/playbook"
	"github.com/stageworks/screenplay/troupe"
	. "github.com/stageworks/screenplay/util/testutil"
)

// SOp is a Service Operation.
//
// Only one of GetPlaybook, GetTroupe, or TOp should have value.
type SOp struct {
	// GetPlaybook is a utility that resolves a knowledge source the
	// way the service would.
	GetPlaybook *GetPlaybookOp `json:"getPlaybook,omitempty" yaml:",omitempty"`

	// ShelvePlaybook stores playbook YAML on the shelf for later
	// casts by name.
	ShelvePlaybook *ShelvePlaybookOp `json:"shelvePlaybook,omitempty" yaml:",omitempty"`

	// GetTroupe reports the current membership.
	GetTroupe *GetTroupeOp `json:"getTroupe,omitempty" yaml:",omitempty"`

	// Error will hold an error (if any) that results from
	// processing this operation.
	Error error `json:"-" yaml:"-"`

	// Err will hold a string representation of an error (if any)
	// that results from processing this operation.
	Err string `json:"err,omitempty" yaml:",omitempty"`

	// TOp gives a Troupe operation.
	TOp *TOp `json:"top,omitempty" yaml:"top,omitempty"`
}

// erred is a utility function to return values to assign to operation
// Error and Err fields.
func erred(err error) (error, string) {
	if err == nil {
		return nil, ""
	}
	return err, err.Error()
}

func (o *SOp) Do(ctx context.Context, s *Service) error {

	s.op(ctx, map[string]interface{}{
		"do": o,
	})

	var err error
	if o.GetPlaybook != nil {
		err = o.GetPlaybook.Do(ctx, s)
	} else if o.ShelvePlaybook != nil {
		err = o.ShelvePlaybook.Do(ctx, s)
	} else if o.GetTroupe != nil {
		err = o.GetTroupe.Do(ctx, s)
	} else if o.TOp != nil {
		err = o.TOp.Do(ctx, s)
	} else {
		err = fmt.Errorf("not implemented: %s", JS(o))
	}

	if err != nil && o.Error == nil {
		o.Error, o.Err = erred(err)
	}

	s.op(ctx, map[string]interface{}{
		"did": o,
	})

	return o.Error
}

type GetPlaybookOp struct {
	Source   *troupe.KnowledgeSource `json:"source,omitempty" yaml:",omitempty"`
	Playbook *playbook.Playbook      `json:"playbook,omitempty" yaml:",omitempty"`
}

func (o *GetPlaybookOp) Do(ctx context.Context, s *Service) error {
	p, err := troupe.ResolveKnowledge(ctx, o.Source, s)
	if err == nil {
		o.Playbook = p
	}
	return err
}

type ShelvePlaybookOp struct {
	Name string `json:"name"`

	// Source is the playbook YAML to shelve.
	Source string `json:"source"`
}

func (o *ShelvePlaybookOp) Do(ctx context.Context, s *Service) error {
	if o.Name == "" {
		return fmt.Errorf("no playbook name given")
	}
	// Reject junk before it gets shelved.
	if _, err := playbook.Load([]byte(o.Source)); err != nil {
		return err
	}
	return s.store.ShelvePlaybook(ctx, o.Name, []byte(o.Source))
}

type GetTroupeOp struct {
	Id      string                             `json:"id,omitempty" yaml:",omitempty"`
	Members map[string]*troupe.KnowledgeSource `json:"members,omitempty" yaml:",omitempty"`
}

func (o *GetTroupeOp) Do(ctx context.Context, s *Service) error {
	o.Id = s.troupe.Id
	o.Members = make(map[string]*troupe.KnowledgeSource, 8)
	for _, id := range s.troupe.Ids() {
		m, have := s.troupe.Member(id)
		if !have {
			continue
		}
		o.Members[id] = m.Knowledge.Copy()
	}
	return nil
}

// TOp is a Troupe Operation.
//
// In normal use, only one field should be given.
type TOp struct {
	// Cast adds a member to the troupe.
	Cast *OpCast `json:"cast,omitempty" yaml:",omitempty"`

	// Dismiss removes a member from the troupe.
	Dismiss *OpDismiss `json:"dismiss,omitempty" yaml:",omitempty"`

	// Perform invokes one of a member's behaviors.
	Perform *OpPerform `json:"perform,omitempty" yaml:",omitempty"`
}

func (o *TOp) Do(ctx context.Context, s *Service) error {
	if o.Cast != nil {
		return o.Cast.Do(ctx, s)
	}
	if o.Dismiss != nil {
		return o.Dismiss.Do(ctx, s)
	}
	if o.Perform != nil {
		return o.Perform.Do(ctx, s)
	}
	panic("not implemented")
}

type OpCast struct {
	// Oid is the optional operation id.  A "transaction" id.
	Oid string `json:"oid,omitempty" yaml:",omitempty"`

	// Id is the id for the new member.
	Id string `json:"id"`

	// Knowledge says what the new actor should learn.
	Knowledge *troupe.KnowledgeSource `json:"knowledge,omitempty" yaml:",omitempty"`

	// Error will hold an error (if any) that results from
	// processing this operation.
	Error error `json:"-" yaml:"-"`

	// Err will hold a string representation of an error (if any)
	// that results from processing this operation.
	Err string `json:"err,omitempty" yaml:",omitempty"`
}

func (o *OpCast) Do(ctx context.Context, s *Service) error {
	if o.Id == "" {
		return fmt.Errorf("no member id given")
	}
	o.Error, o.Err = erred(s.Cast(ctx, o.Id, o.Knowledge))
	return nil
}

type OpDismiss struct {
	// Oid is the optional operation id.  A "transaction" id.
	Oid string `json:"oid,omitempty" yaml:",omitempty"`

	// Id is the id of the member to remove.
	Id string `json:"id"`

	// Error will hold an error (if any) that results from
	// processing this operation.
	Error error `json:"-" yaml:"-"`

	// Err will hold a string representation of an error (if any)
	// that results from processing this operation.
	Err string `json:"err,omitempty" yaml:",omitempty"`
}

func (o *OpDismiss) Do(ctx context.Context, s *Service) error {
	o.Error, o.Err = erred(s.Dismiss(ctx, o.Id))
	return nil
}

type OpPerform struct {
	// Oid is the optional operation id.  A "transaction" id.
	Oid string `json:"oid,omitempty" yaml:",omitempty"`

	// Id is the member to perform.
	Id string `json:"id"`

	// Mode is "call", "check", "can", or "say".
	Mode string `json:"mode"`

	// Name is the behavior (or saying) name.
	Name string `json:"name"`

	// Args are keyword arguments for call, check, and can.
	Args core.Args `json:"args,omitempty" yaml:",omitempty"`

	// SayArgs are positional arguments for say.
	SayArgs []interface{} `json:"sayArgs,omitempty" yaml:",omitempty"`

	// Result holds whatever the invocation returned.  For mode
	// "can", that's the actor's traits afterwards.
	Result interface{} `json:"result,omitempty" yaml:",omitempty"`

	// Error will hold an error (if any) that results from
	// processing this operation.
	Error error `json:"-" yaml:"-"`

	// Err will hold a string representation of an error (if any)
	// that results from processing this operation.
	Err string `json:"err,omitempty" yaml:",omitempty"`
}

func (o *OpPerform) Do(ctx context.Context, s *Service) error {
	got, err := s.Perform(ctx, o.Id, o.Mode, o.Name, o.Args, o.SayArgs)
	o.Result = got
	o.Error, o.Err = erred(err)
	return err
}
