package server

/*
Package `server` evaluates arithmetic expressions for clients connected over TCP.

Clients send one expression per line, terminated by LF (optionally CRLF). Every line gets exactly one reply line,
terminated by CRLF: either the decimal result, or an error message tagged by the layers it went through, eg.
"server error: parser error: division by zero". A connection is kept open until either side closes it.

All socket operations are asynchronous: each is started on its own goroutine, and its completion handler is
queued onto a shared worker pool (see the `worker` package). Handlers belonging to a single session run on a
strand, so a session never reads and writes at the same time.

Live sessions are tracked by a SessionManager. A session is stopped exactly once, either when its connection
fails or when the server shuts down on SIGINT/SIGTERM, whichever happens first.
*/
