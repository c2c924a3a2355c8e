// Package resilience groups the fault tolerance helpers used around outbound
// calls to language model providers and fetched web pages.
//
// Callers retry around the breaker so an open breaker ends retries at once:
//
//	cb := circuitbreaker.New(circuitbreaker.AssistantConfig("claude"))
//	reply, err := retry.Do(ctx, retry.AssistantConfig("claude"), func() (string, error) {
//	    return circuitbreaker.Do(cb, func() (string, error) {
//	        return complete(ctx, prompt)
//	    })
//	})
package resilience
