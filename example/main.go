package main

import (
	"fmt"
	"log"
	"os"

	"github.com/theflywheel/qtable"
)

func main() {
	// Start small so the fourth insert grows the table
	ht, err := qtable.New(5)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	ht.SetLogger(log.New(os.Stdout, "", 0))

	fmt.Println("Table created with capacity", ht.Capacity())

	pairs := [][2]int{{123, 42}, {456, 78}, {789, 99}, {101, 23}, {102, 34}}
	for _, p := range pairs {
		if err := ht.Insert(p[0], p[1]); err != nil {
			log.Fatalf("Failed to insert key %d: %v", p[0], err)
		}
	}

	fmt.Printf("Inserted %d key-value pairs, capacity now %d\n", ht.Len(), ht.Capacity())

	// Retrieve and display the values, plus one key that was never stored
	for _, key := range []int{123, 456, 789, 101, 102, 103} {
		value, found := ht.Search(key)
		if found {
			fmt.Printf("search(%d) = %d\n", key, value)
		} else {
			fmt.Printf("search(%d) not found\n", key)
		}
	}

	// Inserting an existing key keeps the stored value
	if err := ht.Insert(123, 999); err != nil {
		log.Fatalf("Failed to insert key 123: %v", err)
	}
	value, _ := ht.Search(123)
	fmt.Printf("After duplicate insert, search(123) = %d\n", value)

	// Out-of-range keys are rejected
	if err := ht.Insert(34, 1); err != nil {
		fmt.Println(err)
	}

	ht.Print(os.Stdout)
	fmt.Println("Example completed successfully")
}
