package integration

import (
	"errors"
	"testing"

	"github.com/zoobzio/owning"
	"github.com/zoobzio/owning/bson"
	"github.com/zoobzio/owning/json"
	"github.com/zoobzio/owning/msgpack"
	owningtest "github.com/zoobzio/owning/testing"
	"github.com/zoobzio/owning/xml"
	"github.com/zoobzio/owning/yaml"
)

func TestCodecClone_JSON(t *testing.T) {
	testCodecClone(t, json.New())
}

func TestCodecClone_YAML(t *testing.T) {
	testCodecClone(t, yaml.New())
}

func TestCodecClone_MessagePack(t *testing.T) {
	testCodecClone(t, msgpack.New())
}

func TestCodecClone_BSON(t *testing.T) {
	testCodecClone(t, bson.New())
}

func TestCodecClone_XML(t *testing.T) {
	testCodecClone(t, xml.New())
}

func testCodecClone(t *testing.T, c owning.Codec) {
	t.Helper()
	owning.ResetRegistry()
	defer owning.ResetRegistry()

	owning.RegisterCodec[owningtest.Document](c)

	src := owning.New(owningtest.Document{Title: "runbook", Sections: []string{"intro", "rollback"}})
	dst, err := src.Clone()
	if err != nil {
		t.Fatalf("Clone() via %s error: %v", c.ContentType(), err)
	}
	owningtest.AssertDistinct(t, &src, &dst)

	got := dst.MustDeref()
	if got.Title != "runbook" || len(got.Sections) != 2 {
		t.Fatalf("clone = %+v, want %+v", *got, *src.MustDeref())
	}

	got.Sections[1] = "rollforward"
	if src.MustDeref().Sections[1] != "rollback" {
		t.Error("codec clone shares Sections with the source")
	}
}

func TestCodecClone_OverridesReflect(t *testing.T) {
	owning.ResetRegistry()
	defer owning.ResetRegistry()

	if got := owning.StrategyOf[owningtest.Document](); got != owning.StrategyReflect {
		t.Fatalf("StrategyOf() = %v, want %v", got, owning.StrategyReflect)
	}

	msgpack.Register[owningtest.Document]()

	if got := owning.StrategyOf[owningtest.Document](); got != owning.StrategyCodec {
		t.Errorf("StrategyOf() after Register = %v, want %v", got, owning.StrategyCodec)
	}
}

func TestClonerBeatsReflect(t *testing.T) {
	owning.ResetRegistry()
	defer owning.ResetRegistry()

	a := owning.New(owningtest.Account{ID: "acct", Tags: []string{"vip"}})
	b, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	owningtest.AssertDistinct(t, &a, &b)

	if got := owning.StrategyOf[owningtest.Account](); got != owning.StrategyCloner {
		t.Errorf("StrategyOf() = %v, want %v", got, owning.StrategyCloner)
	}
}

func TestSessionLifecycle(t *testing.T) {
	log := owningtest.DropLog{}

	a := owning.From(owningtest.NewSession("a", log))
	b := owning.From(owningtest.NewSession("b", log))

	// b takes a's session; b's own is dropped
	b.MoveFrom(&a)
	owningtest.AssertEmpty(t, &a)
	if log["b"] != 1 || log["a"] != 0 {
		t.Fatalf("after MoveFrom drops = %v, want b:1", log)
	}

	// hand the session out, then take it back
	raw := b.Release()
	if log["a"] != 0 {
		t.Fatalf("Release() dropped the session")
	}
	b.Reset(raw)

	b.Clear()
	if log["a"] != 1 {
		t.Errorf("drops[a] = %d, want 1", log["a"])
	}
}

func TestEncodingHooks_JSONCodec(t *testing.T) {
	type order struct {
		ID      string                         `json:"id"`
		Account owning.Ptr[owningtest.Account] `json:"account"`
	}

	in := &order{ID: "o1"}
	in.Account.Reset(&owningtest.Account{ID: "acct", Tags: []string{"vip"}})

	c := json.New()
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var out order
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	owningtest.AssertDistinct(t, &in.Account, &out.Account)
	if out.Account.MustDeref().ID != "acct" {
		t.Errorf("Account.ID = %q, want %q", out.Account.MustDeref().ID, "acct")
	}
}

func TestEncodingHooks_MsgpackCodec(t *testing.T) {
	type order struct {
		ID      string                         `msgpack:"id"`
		Account owning.Ptr[owningtest.Account] `msgpack:"account"`
	}

	in := &order{ID: "o2"}

	c := msgpack.New()
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var out order
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	owningtest.AssertEmpty(t, &out.Account)
}

func TestUnsupportedWithoutStrategy(t *testing.T) {
	owning.ResetRegistry()
	defer owning.ResetRegistry()

	type watcher struct {
		Name    string
		Updates chan string
	}

	p := owning.New(watcher{Name: "w", Updates: make(chan string)})
	if _, err := p.Clone(); !errors.Is(err, owning.ErrUnsupported) {
		t.Errorf("Clone() error = %v, want ErrUnsupported", err)
	}
}
