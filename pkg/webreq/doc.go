// Package webreq demonstrates the rail pipeline on a small request handler:
// parse a JSON body, require an id field, and reply with a status and
// message derived from whichever variant the pipeline terminated in.
//
// The parser converts only anticipated failures into the failure variant;
// anything outside that set propagates as a panic so that genuine bugs do
// not hide behind the validation path.
package webreq
