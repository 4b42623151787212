package ports

type Queue interface {
	Put(host string)
	TryTake() (string, bool)
	Len() int
}

// ResultSet is append-only and safe for concurrent Append.
type ResultSet interface {
	Append(host string)
	Snapshot() []string
	Len() int
}

type Progress interface {
	Increment()
	Current() int
	Total() int
}
