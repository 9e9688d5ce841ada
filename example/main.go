package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/coder/waitfor"
)

func main() {
	start := time.Now()

	w := waitfor.New(2*time.Second, 50*time.Millisecond)
	err := w.Wait(context.Background(), func() error {
		if time.Since(start) < time.Second {
			return errors.New("not enough time has elapsed")
		}
		return nil
	})
	fmt.Printf("err: %v, took %v\n", err, time.Since(start))
}
