// Package extract converts uploaded PDF or plain-text documents into a
// single normalized UTF-8 text blob ready for prompt construction.
package extract
