package cmd

import (
	"context"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	httpapi "taskphoto.com/taskphoto/internal/http"
	"taskphoto.com/taskphoto/internal/services"
)

func setTestEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "file:cmdtest?mode=memory&cache=shared")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("LOGIN_DELAY_MS", "0")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SEED_FIXTURES", "true")
}

func TestCoreModule_SeedsAndReports(t *testing.T) {
	setTestEnv(t)

	var tasks *services.TaskService
	app := fxtest.New(t, coreModule, fx.Populate(&tasks))
	app.RequireStart()
	defer app.RequireStop()

	out, err := buildReport(context.Background(), tasks)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if out.Stats.Total != 4 || out.Stats.ApprovalRate != 25 {
		t.Errorf("unexpected stats: %+v", out.Stats)
	}
	if len(out.Assignees) != 3 {
		t.Errorf("expected 3 assignees, got %d", len(out.Assignees))
	}
}

func TestServeGraph(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DATABASE_DSN", "file:servetest?mode=memory&cache=shared")

	err := fx.ValidateApp(
		coreModule,
		fx.Provide(httpapi.NewHandler, newEcho),
		fx.Invoke(serverLifecycle),
	)
	if err != nil {
		t.Fatalf("invalid dependency graph: %v", err)
	}
}
