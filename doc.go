/*
Package qtable provides an in-memory hash table for three-digit integer keys
using open addressing with quadratic probing.

Basic usage:

	import "github.com/theflywheel/qtable"

	t, err := qtable.New(11)
	if err != nil {
		log.Fatal(err)
	}

	if err := t.Insert(123, 42); err != nil {
		log.Println(err) // Invalid key: ...
	}

	if v, ok := t.Search(123); ok {
		fmt.Println("Value:", v)
	}

	t.Print(os.Stdout) // _ _ 123 42 _ ...

Features:

  - Keys in [100, 999], integer values
  - Insert of an existing key keeps the stored value
  - Automatic resizing when the load factor reaches 0.5, checked before each insert
  - Capacity grows to the smallest prime above twice the old capacity
  - Not safe for concurrent use

Implementation Details:

The home slot of a key is key mod capacity. Collisions are resolved by
visiting (home + i*i) mod capacity for i = 0, 1, 2, ... until an empty slot
or the key itself is found. With a prime capacity and a table at most half
full this sequence always reaches a free slot.

A resize allocates a fresh slot array and re-inserts every pair in old slot
order, so slot positions are not stable across inserts.

The initial capacity is used as given. If it is not prime, probing is bounded
to capacity attempts and an insert that finds no free slot grows the table
first.
*/
package qtable
