package store

import (
	"log"
	"sync"
	"time"

	"genequest/backend/engine"
	"genequest/backend/models"

	"github.com/go-co-op/gocron"
)

// SyncController write-throughs progress mutations to the store. The engine
// never blocks on persistence: a failed write leaves the record dirty here
// and a background job retries it. Past the retry budget the user is flagged
// degraded, which surfaces as a read-only warning rather than a failure of
// the learning flow.
type SyncController struct {
	store       ProgressStore
	cache       *Cache
	logger      *log.Logger
	scheduler   *gocron.Scheduler
	retryBudget int

	mu               sync.Mutex
	pending          map[string]*engine.Progress
	pendingResponses []models.TestResponse
	failures         map[string]int
}

func NewSyncController(s ProgressStore, logger *log.Logger, flushInterval time.Duration, retryBudget int) *SyncController {
	sc := &SyncController{
		store:       s,
		cache:       NewCache(),
		logger:      logger,
		scheduler:   gocron.NewScheduler(time.UTC),
		retryBudget: retryBudget,
		pending:     map[string]*engine.Progress{},
		failures:    map[string]int{},
	}
	sc.scheduler.Every(flushInterval).Do(sc.Flush)
	return sc
}

// Start launches the background flush job.
func (sc *SyncController) Start() {
	sc.scheduler.StartAsync()
}

func (sc *SyncController) Stop() {
	sc.scheduler.Stop()
}

// Load reads a user's progress: store first, cache on store failure, and a
// synthesized default record when neither has one.
func (sc *SyncController) Load(userID string) *engine.Progress {
	p, err := sc.store.GetProgress(userID)
	if err == nil {
		if p == nil {
			p = engine.NewProgress(userID)
		}
		sc.cache.Put(p)
		return p
	}

	sc.logger.Printf("progress read failed for %s, falling back to cache: %v", userID, err)
	if cached, ok := sc.cache.Get(userID); ok {
		return cached
	}
	return engine.NewProgress(userID)
}

// Save applies a progress mutation: the cache is updated immediately
// (read-your-writes) and the store upsert happens best-effort. Save never
// fails from the caller's point of view.
func (sc *SyncController) Save(p *engine.Progress) {
	snapshot := p.Clone()
	sc.cache.Put(snapshot)

	if err := sc.store.UpsertProgress(snapshot); err != nil {
		sc.logger.Printf("progress write failed for %s, queued for retry: %v", p.UserID, err)
		sc.mu.Lock()
		sc.pending[p.UserID] = snapshot
		sc.failures[p.UserID]++
		sc.mu.Unlock()
		return
	}

	sc.mu.Lock()
	delete(sc.pending, p.UserID)
	delete(sc.failures, p.UserID)
	sc.mu.Unlock()
}

// SaveResponse appends a test response log row, queueing it on failure.
func (sc *SyncController) SaveResponse(r models.TestResponse) {
	if err := sc.store.AppendTestResponse(&r); err != nil {
		sc.logger.Printf("test response write failed for %s, queued for retry: %v", r.UserID, err)
		sc.mu.Lock()
		sc.pendingResponses = append(sc.pendingResponses, r)
		sc.mu.Unlock()
	}
}

// Degraded reports whether a user's writes have failed past the retry
// budget. Local state remains valid; this only drives a warning.
func (sc *SyncController) Degraded(userID string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.failures[userID] >= sc.retryBudget
}

// Flush retries every queued write. Called by the scheduler and, in tests,
// directly.
func (sc *SyncController) Flush() {
	sc.mu.Lock()
	dirty := make([]*engine.Progress, 0, len(sc.pending))
	for _, p := range sc.pending {
		dirty = append(dirty, p)
	}
	responses := sc.pendingResponses
	sc.pendingResponses = nil
	sc.mu.Unlock()

	for _, p := range dirty {
		err := sc.store.UpsertProgress(p)
		sc.mu.Lock()
		if err != nil {
			sc.failures[p.UserID]++
			sc.mu.Unlock()
			sc.logger.Printf("retry write failed for %s: %v", p.UserID, err)
			continue
		}
		// A newer snapshot may have been queued while we flushed.
		if sc.pending[p.UserID] == p {
			delete(sc.pending, p.UserID)
			delete(sc.failures, p.UserID)
		}
		sc.mu.Unlock()
	}

	var requeue []models.TestResponse
	for i := range responses {
		if err := sc.store.AppendTestResponse(&responses[i]); err != nil {
			requeue = append(requeue, responses[i])
		}
	}
	if len(requeue) > 0 {
		sc.mu.Lock()
		sc.pendingResponses = append(requeue, sc.pendingResponses...)
		sc.mu.Unlock()
	}
}
