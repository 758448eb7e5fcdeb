// Command swiper replays swipe scenarios against the swiper pager.
package main

import "github.com/go-drift/swiper/cmd/swiper/cmd"

func main() {
	cmd.Execute()
}
