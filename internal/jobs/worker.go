package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"

	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
	"github.com/tu-usuario/servitec-crm/pkg/logger"
)

// AlertScanJob handler del escaneo periódico de alertas de stock.
type AlertScanJob struct {
	monitor *inventory.StockMonitorUseCase
	log     *logger.Logger
}

// NewAlertScanJob construye el handler.
func NewAlertScanJob(monitor *inventory.StockMonitorUseCase, log *logger.Logger) *AlertScanJob {
	return &AlertScanJob{monitor: monitor, log: log}
}

// Handle ejecuta el escaneo: resuelve alertas limpias y crea las que falten.
func (j *AlertScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload AlertScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	start := time.Now()
	result, err := j.monitor.ScanAlerts(ctx, payload.WindowDays)
	if err != nil {
		j.log.Error().Err(err).Msg("escaneo de alertas falló")
		return err
	}
	j.log.Info().
		Int("created", result.Created).
		Int("resolved", result.Resolved).
		Dur("duration", time.Since(start)).
		Msg("escaneo de alertas completado")
	return nil
}

// WorkerConfig dependencias para levantar el worker.
type WorkerConfig struct {
	RedisOpts  asynq.RedisClientOpt
	Monitor    *inventory.StockMonitorUseCase
	Logger     *logger.Logger
	ScanCron   string // expresión cron; vacío = sin scheduler
	WindowDays int
}

// Worker envuelve el servidor Asynq y el scheduler del escaneo periódico.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
}

// NewWorker construye el worker con el handler de escaneo y, si hay cron, el
// scheduler que lo encola periódicamente.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	if cfg.Monitor == nil {
		return nil, errors.New("jobs: monitor requerido")
	}
	srv := asynq.NewServer(cfg.RedisOpts, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			QueueDefault: 1,
		},
	})
	mux := asynq.NewServeMux()
	scanJob := NewAlertScanJob(cfg.Monitor, cfg.Logger)
	mux.HandleFunc(TaskTypeAlertScan, scanJob.Handle)

	var scheduler *asynq.Scheduler
	if cfg.ScanCron != "" {
		task, err := NewAlertScanTask(AlertScanPayload{WindowDays: cfg.WindowDays})
		if err != nil {
			return nil, err
		}
		scheduler = asynq.NewScheduler(cfg.RedisOpts, &asynq.SchedulerOpts{Location: time.UTC})
		if _, err := scheduler.Register(cfg.ScanCron, task, asynq.Queue(QueueDefault)); err != nil {
			return nil, err
		}
	}

	return &Worker{server: srv, mux: mux, scheduler: scheduler}, nil
}

// Run procesa trabajos hasta que se cancele el contexto.
func (w *Worker) Run(ctx context.Context) error {
	if w == nil {
		return errors.New("jobs: worker no configurado")
	}
	if w.scheduler != nil {
		if err := w.scheduler.Start(); err != nil {
			return err
		}
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.server.Run(w.mux)
	}()
	select {
	case <-ctx.Done():
		if w.scheduler != nil {
			w.scheduler.Shutdown()
		}
		w.server.Shutdown()
		return ctx.Err()
	case err := <-errCh:
		if w.scheduler != nil {
			w.scheduler.Shutdown()
		}
		return err
	}
}
