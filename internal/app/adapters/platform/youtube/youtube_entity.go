package youtube

type VideoResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title                string `json:"title"`
			ChannelTitle         string `json:"channelTitle"`
			LiveBroadcastContent string `json:"liveBroadcastContent"`
		} `json:"snippet"`
		LiveStreamingDetails struct {
			ActualStartTime    string `json:"actualStartTime"`
			ConcurrentViewers  string `json:"concurrentViewers"`
			ActiveLiveChatID   string `json:"activeLiveChatId"`
			ScheduledStartTime string `json:"scheduledStartTime"`
		} `json:"liveStreamingDetails"`
	} `json:"items"`
}
