// Copyright (C) 2024 Alexei Volkov
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package internal

import (
	"bufio"
	"fmt"
	"os"
)

// Singleton log writer. Writes to stdout, and optionally tees into a file.
// Adds no prefixes and forces no newlines.

var teeFile *bufio.Writer
var teeOS *os.File

// LogAlsoToFile additionally logs everything to the given file, replacing
// any previously configured log file.
func LogAlsoToFile(fileName string) (err error) {
	if teeFile != nil {
		if err = teeFile.Flush(); err != nil {
			return err
		}
		if err = teeOS.Close(); err != nil {
			return err
		}
	}
	teeOS, err = os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	teeFile = bufio.NewWriter(teeOS)
	return nil
}

func LogPrintf(format string, args ...interface{}) (n int, err error) {
	n, err = fmt.Printf(format, args...)
	if err != nil || teeFile == nil {
		return n, err
	}
	return fmt.Fprintf(teeFile, format, args...)
}

func LogPrintln(args ...interface{}) (n int, err error) {
	n, err = fmt.Println(args...)
	if err != nil || teeFile == nil {
		return n, err
	}
	return fmt.Fprintln(teeFile, args...)
}

// LogFatalf logs, flushes and exits with a non-zero status.
func LogFatalf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	if teeFile != nil {
		fmt.Fprintf(teeFile, format, args...)
		teeFile.Flush()
		teeOS.Close()
	}
	os.Exit(1)
}

// LogSync flushes the log file, if any.
func LogSync() {
	if teeFile != nil {
		teeFile.Flush()
		teeOS.Sync()
	}
}
