package utils

import (
	"errors"
	"testing"
	"time"
)

func failNTimes(n int) func() (int, error) {
	attempts := 0
	return func() (int, error) {
		attempts++
		if attempts <= n {
			return 0, errors.New("transient failure")
		}
		return attempts, nil
	}
}

func TestRetrierRecoversWithinBudget(t *testing.T) {
	retrier := NewRetrier[int](NewExponentialBackoffStrategy(3, time.Millisecond, 0, 2*time.Millisecond))

	attempts, err := retrier.DoWithReturn(failNTimes(3))
	if err != nil {
		t.Fatalf("Expected the fourth attempt to succeed: %v", err)
	}
	if attempts != 4 {
		t.Fatalf("Expected 4 attempts, got %v", attempts)
	}
}

func TestRetrierGivesUpPastBudget(t *testing.T) {
	retrier := NewRetrier[int](NewExponentialBackoffStrategy(2, time.Millisecond, 0, 2*time.Millisecond))

	_, err := retrier.DoWithReturn(failNTimes(5))
	if err == nil {
		t.Fatal("Expected the retrier to give up after the budget is spent")
	}
}

func TestNopStrategyFailsImmediately(t *testing.T) {
	retrier := NewRetrier[int](&NopRetryStrategy{})

	action := failNTimes(1)
	if _, err := retrier.DoWithReturn(action); err == nil {
		t.Fatal("Expected the first error to be returned as-is")
	}

	// The next call succeeds, proving only one attempt was made before.
	if attempts, err := retrier.DoWithReturn(action); err != nil || attempts != 2 {
		t.Fatalf("Expected the second attempt to succeed, got %v, %v", attempts, err)
	}
}

func TestExponentialBackoffDelaysAreBounded(t *testing.T) {
	strategy := NewExponentialBackoffStrategy(10, time.Millisecond, 0, 4*time.Millisecond)

	err := errors.New("transient failure")
	var previous time.Duration
	for i := 0; i < 10; i++ {
		decision := strategy.HandleError(err)
		if decision.ReturnError {
			t.Fatalf("Retry %v is still within the budget", i)
		}
		if decision.TimeToWait > 4*time.Millisecond {
			t.Fatalf("Delay %v exceeds the configured maximum", decision.TimeToWait)
		}
		if decision.TimeToWait < previous {
			t.Fatalf("Delays must not shrink: %v after %v", decision.TimeToWait, previous)
		}
		previous = decision.TimeToWait
	}

	if decision := strategy.HandleError(err); !decision.ReturnError {
		t.Fatal("Expected the strategy to give up past its budget")
	}

	strategy.HandleSuccess()
	if decision := strategy.HandleError(err); decision.ReturnError || decision.TimeToWait != time.Millisecond {
		t.Fatalf("A success must reset the strategy, got %+v", decision)
	}
}
