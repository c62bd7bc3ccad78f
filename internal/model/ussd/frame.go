package ussd

import "strings"

// Request carries the four fields the USSD gateway posts on every turn.
// All of them are optional on the wire; the engine normalizes absent values.
type Request struct {
	SessionID   string
	ServiceCode string
	Phone       string
	Text        string
}

// Response is one protocol frame. A continue frame renders its lines as a
// menu and keeps the dialog open; a terminal frame carries a single closing
// message and ends the dialog.
type Response struct {
	Terminal bool
	Lines    []string
}

// Con builds a continue frame from one or more menu lines.
func Con(lines ...string) Response {
	return Response{Lines: lines}
}

// End builds a terminal frame with exactly one message line.
func End(message string) Response {
	return Response{Terminal: true, Lines: []string{message}}
}

// Render encodes the frame in the gateway's plain-text format:
// "CON <line1>\n<line2>..." or "END <message>".
func (r Response) Render() string {
	if r.Terminal {
		return "END " + r.Lines[0]
	}
	return "CON " + strings.Join(r.Lines, "\n")
}
