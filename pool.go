package numstats

import (
	"sync"
)

// workerPool runs jobs on a fixed number of goroutines.
type workerPool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

// newWorkerPool creates a worker pool with the given number of workers, at least one.
func newWorkerPool(workers int) *workerPool {
	workers = max(workers, 1)

	pool := &workerPool{
		jobs: make(chan func(), workers),
	}

	for range workers {
		go pool.worker()
	}

	return pool
}

// enqueue adds a job to the pool. It blocks while every worker is busy and the queue is full.
func (pool *workerPool) enqueue(job func()) {
	pool.wg.Add(1)

	pool.jobs <- job
}

// wait closes the queue and waits for every enqueued job to finish.
// The pool cannot be reused afterwards.
func (pool *workerPool) wait() {
	close(pool.jobs)
	pool.wg.Wait()
}

// worker is the main loop executed by each worker goroutine.
func (pool *workerPool) worker() {
	for job := range pool.jobs {
		job()
		pool.wg.Done()
	}
}
