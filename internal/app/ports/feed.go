package ports

type FeedPort interface {
	Broadcast(row Row)
}
