package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"manorfall/internal/adapter/metrics/inmemory"
	"manorfall/internal/adapter/repo/memory"
	"manorfall/internal/app/game"
	"manorfall/internal/app/observe"
	"manorfall/internal/app/ports"
	"manorfall/internal/app/session"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func testHandler() Handler {
	store := memory.NewStore()
	engine := game.NewEngine(nil, nil, game.Runtime{
		Now:  func() time.Time { return time.Unix(1700000000, 0) },
		Rand: func() float64 { return 0.99 },
	})
	states := memory.NewGameStateRepo(store)
	return Handler{
		SessionUC: session.UseCase{
			TxManager:  memory.NewTxManager(store),
			States:     states,
			Dispatches: memory.NewDispatchRepo(store),
			Metrics:    inmemory.NewRecorder(),
			Engine:     engine,
		},
		ObserveUC: observe.UseCase{
			States:  states,
			Now:     func() time.Time { return time.Unix(1700000000, 0) },
			Content: engine.Content,
		},
		KPI: inmemory.NewRecorder(),
	}
}

func postJSON(t *testing.T, handler func(context.Context, *app.RequestContext), body any) *app.RequestContext {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody(raw)
	handler(context.Background(), ctx)
	return ctx
}

func TestNewGameEndpoint(t *testing.T) {
	h := testHandler()

	ctx := postJSON(t, h.newGame, session.NewGameRequest{SessionID: "s1"})
	if got := ctx.Response.StatusCode(); got != consts.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", got, consts.StatusCreated, ctx.Response.Body())
	}

	var resp session.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.State.SessionID != "s1" || resp.State.Version != 1 {
		t.Fatalf("state = session %q version %d", resp.State.SessionID, resp.State.Version)
	}

	ctx = postJSON(t, h.newGame, session.NewGameRequest{SessionID: "s1"})
	if got := ctx.Response.StatusCode(); got != consts.StatusConflict {
		t.Fatalf("duplicate session status = %d, want %d", got, consts.StatusConflict)
	}
}

func TestActionEndpoint(t *testing.T) {
	h := testHandler()
	postJSON(t, h.newGame, session.NewGameRequest{SessionID: "s1"})

	ctx := postJSON(t, h.action, session.DispatchRequest{
		SessionID: "s1",
		Action:    game.Action{Type: game.ActionAdvanceTime},
	})
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", got, consts.StatusOK, ctx.Response.Body())
	}

	var resp session.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.State.Cycle != 1 || resp.State.Version != 2 {
		t.Fatalf("state = cycle %d version %d", resp.State.Cycle, resp.State.Version)
	}
}

func TestActionEndpointUnknownSession(t *testing.T) {
	h := testHandler()

	ctx := postJSON(t, h.action, session.DispatchRequest{
		SessionID: "ghost",
		Action:    game.Action{Type: game.ActionAdvanceTime},
	})
	if got := ctx.Response.StatusCode(); got != consts.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, consts.StatusNotFound)
	}
}

func TestObserveEndpoint(t *testing.T) {
	h := testHandler()
	postJSON(t, h.newGame, session.NewGameRequest{SessionID: "s1"})

	ctx := postJSON(t, h.observe, observe.Request{SessionID: "s1"})
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", got, consts.StatusOK, ctx.Response.Body())
	}

	var resp observe.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Slots) == 0 {
		t.Fatal("expected slot summaries")
	}
	if len(resp.Hand) != 1 {
		t.Fatalf("hand = %d cards, want the hero", len(resp.Hand))
	}
}

func TestNewGameEndpointRejectsMalformedJSON(t *testing.T) {
	h := testHandler()

	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte("{not json"))
	h.newGame(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want %d", got, consts.StatusBadRequest)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{session.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
		{observe.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
		{session.ErrSessionExists, consts.StatusConflict, "session_exists"},
		{ports.ErrNotFound, consts.StatusNotFound, "not_found"},
		{ports.ErrConflict, consts.StatusConflict, "conflict"},
		{errors.New("boom"), consts.StatusInternalServerError, "internal_error"},
	}
	for _, c := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, c.err)
		if got := ctx.Response.StatusCode(); got != c.status {
			t.Fatalf("%v: status = %d, want %d", c.err, got, c.status)
		}
		var body map[string]map[string]any
		if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if got := body["error"]["code"]; got != c.code {
			t.Fatalf("%v: code = %q, want %q", c.err, got, c.code)
		}
	}
}

func TestKPIEndpointWithoutProvider(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}
	h.kpi(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, consts.StatusNotFound)
	}
}
