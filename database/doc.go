/*
Package database provides the per-subnet record store used by zonecheck. A Network owns
all forward, reverse and metadata records whose addresses fall within one
netspace.Space. Forward records are indexed by hostname, reverse records and metadata by
address, and each index entry is a set so duplicate definitions are retained rather than
rejected.

A Network is append-only. There is no internal concurrency protection: once populated a
Network should only be read, which is what the checker and Rows() do.

Expected usage is:

	db := database.NewNetwork(space)
	for {
		err := db.Add(rr) // database.ErrOutOfRange if rr is not in space
	}

	for _, row := range db.Rows() {
		fmt.Println(row)
	}

database.Getter exists to assist with switching sets of Networks atomically when zones
are reloaded.
*/
package database
