// Hammers a running cart server with concurrent add requests for one product
// and reports how many were committed versus rejected. Useful for checking
// that serialized mutations never overshoot the stock level.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const (
	serverURL     = "http://localhost:8080"
	productID     = 1
	totalRequests = 50
)

func main() {
	client := &http.Client{Timeout: 10 * time.Second}

	var successCount atomic.Int32
	var rejectedCount atomic.Int32
	var failCount atomic.Int32
	var wg sync.WaitGroup

	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body, _ := json.Marshal(map[string]int64{"product_id": productID})
			resp, err := client.Post(serverURL+"/api/cart/items", "application/json", bytes.NewReader(body))
			if err != nil {
				failCount.Add(1)
				return
			}
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusConflict:
				rejectedCount.Add(1)
			default:
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	resp, err := client.Get(serverURL + "/api/cart")
	if err != nil {
		log.Fatalf("failed to read cart: %v", err)
	}
	defer resp.Body.Close()

	var cart []struct {
		ID     int64 `json:"id"`
		Amount int   `json:"amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		log.Fatalf("failed to decode cart: %v", err)
	}

	committed := 0
	for _, entry := range cart {
		if entry.ID == productID {
			committed = entry.Amount
		}
	}

	fmt.Printf("requests:  %d in %v\n", totalRequests, elapsed)
	fmt.Printf("accepted:  %d\n", successCount.Load())
	fmt.Printf("rejected:  %d (out of stock)\n", rejectedCount.Load())
	fmt.Printf("failed:    %d\n", failCount.Load())
	fmt.Printf("committed amount for product %d: %d\n", productID, committed)

	if int(successCount.Load()) != committed {
		log.Fatalf("MISMATCH: %d accepted requests but committed amount is %d", successCount.Load(), committed)
	}
	fmt.Println("OK: accepted requests match committed amount")
}
