package metadata

import (
	"context"
	"errors"
	"testing"

	"stock-data/internal/model"
)

type fakeInfo struct {
	profile      *model.Profile
	profileErr   error
	short        string
	shortErr     error
	profileCalls int
	shortCalls   int
}

func (f *fakeInfo) Profile(context.Context, string) (*model.Profile, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

func (f *fakeInfo) ShortName(context.Context, string) (string, error) {
	f.shortCalls++
	return f.short, f.shortErr
}

func TestResolve_PrefersLongName(t *testing.T) {
	src := &fakeInfo{profile: &model.Profile{LongName: "Toyota Motor Corporation", ShortName: "TOYOTA MOTOR CORP", Exchange: "JPX"}}
	md, err := NewResolver(src).Resolve(context.Background(), "7203.T")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := model.TickerMetadata{Code: "7203.T", Name: "Toyota Motor Corporation", Market: "JPX"}
	if *md != want {
		t.Errorf("got %+v, want %+v", *md, want)
	}
	if src.shortCalls != 0 {
		t.Error("fallback must not run when the full profile succeeds")
	}
}

func TestResolve_ShortNameWhenNoLongName(t *testing.T) {
	src := &fakeInfo{profile: &model.Profile{ShortName: "Apple Inc.", Exchange: "NMS"}}
	md, err := NewResolver(src).Resolve(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if md.Name != "Apple Inc." || md.Market != "NMS" {
		t.Errorf("unexpected metadata %+v", md)
	}
}

func TestResolve_EmptyProfileKeepsCodeWithoutFallback(t *testing.T) {
	src := &fakeInfo{profile: &model.Profile{}, short: "SHOULD NOT BE USED"}
	md, err := NewResolver(src).Resolve(context.Background(), "XYZ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if md.Name != "XYZ" || md.Market != "" {
		t.Errorf("unexpected metadata %+v", md)
	}
	if src.shortCalls != 0 {
		t.Error("empty fields must not trigger the fallback")
	}
}

func TestResolve_FallbackOnProfileError(t *testing.T) {
	src := &fakeInfo{profileErr: errors.New("401 Invalid Crumb"), short: "MICROSOFT CORP"}
	md, err := NewResolver(src).Resolve(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := model.TickerMetadata{Code: "MSFT", Name: "MICROSOFT CORP", Market: ""}
	if *md != want {
		t.Errorf("got %+v, want %+v", *md, want)
	}
}

func TestResolve_FallbackWithoutShortNameUsesTicker(t *testing.T) {
	src := &fakeInfo{profileErr: errors.New("timeout")}
	md, err := NewResolver(src).Resolve(context.Background(), "MSFT")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if md.Name != "MSFT" || md.Market != "" {
		t.Errorf("unexpected metadata %+v", md)
	}
}

func TestResolve_BothFailReportsFirstError(t *testing.T) {
	first := errors.New("quoteSummary: Unauthorized")
	second := errors.New("quote: connection refused")
	src := &fakeInfo{profileErr: first, shortErr: second}

	_, err := NewResolver(src).Resolve(context.Background(), "MSFT")
	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ResolveError, got %v", err)
	}
	if err.Error() != first.Error() {
		t.Errorf("expected first error message %q, got %q", first.Error(), err.Error())
	}
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Error("both strategy errors should be reachable")
	}
}

func TestResolve_EmptyTicker(t *testing.T) {
	src := &fakeInfo{}
	if _, err := NewResolver(src).Resolve(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty ticker")
	}
	if src.profileCalls != 0 {
		t.Error("provider must not be called for an empty ticker")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("C", "L", "S"); got != "L" {
		t.Errorf("got %q", got)
	}
	if got := DisplayName("C", "", "S"); got != "S" {
		t.Errorf("got %q", got)
	}
	if got := DisplayName("C", "", ""); got != "C" {
		t.Errorf("got %q", got)
	}
}

func TestResolve_CancelledContextStopsChain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeInfo{profileErr: context.Canceled, short: "Apple"}

	_, err := NewResolver(src).Resolve(ctx, "AAPL")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var re *ResolveError
	if !errors.As(err, &re) || len(re.Errs) != 1 {
		t.Errorf("expected a ResolveError with one strategy error, got %v", err)
	}
	if src.shortCalls != 0 {
		t.Errorf("short-name lookup must not run after cancellation, got %d calls", src.shortCalls)
	}
}
