package patterns

import "time"

// DefaultTimeout is the default timeout for upstream HTTP requests
const DefaultTimeout = 10 * time.Second

// SlowServiceTimeout covers PDF downloads, which can be several megabytes
const SlowServiceTimeout = 30 * time.Second

// AnalyticsTimeout bounds the fire-and-forget analytics call
const AnalyticsTimeout = 3 * time.Second

// BulkheadWait is how long a caller waits for a free bulkhead slot
const BulkheadWait = 1 * time.Second
