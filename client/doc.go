// Package client implements a high-level Go client for the Plié
// dance-academy management API.
//
// It provides a thin typed wrapper around the REST surface and adds:
//   - In-memory bearer credentials with a transparent refresh-and-replay
//     cycle on 401, bounded to exactly one retry per request.
//   - A shared refresh operation: concurrent requests that expire together
//     trigger a single refresh HTTP call.
//   - Per-grouping services (Auth, Groups, Halls, Teachers, Schedule, …)
//     returning the typed shapes from the schema package.
//
// Example:
//
//	cli, _ := client.New("https://academy.example.com")
//	if _, err := cli.Auth.Login(ctx, "admin@example.com", "secret"); err != nil { ... }
//	halls, _ := cli.Halls.List(ctx)
//	fmt.Println(halls.Halls)
package client
