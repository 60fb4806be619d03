package main

import "github.com/premdata/fpl-warehouse/internal/app"

func main() {
	app.Run("replicate", app.NewReplicateJob)
}
