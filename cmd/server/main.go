package main

import "github.com/loydmilligan/leadoff/internal/app"

// @title LeadOff API
// @version 1.0
// @description Lead pipeline engine: stage transitions, follow-up scheduling and daily planning.
// @BasePath /api/v1
func main() {
	app.Run()
}
