//  Copyright 2024 Google Inc. All Rights Reserved.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// wureset reverts the Windows Update Automatic Updates policy value
// (AUOptions) to its default so the machine follows its local update
// configuration again. RMM patch-management policies set this value on
// their own schedule; running this tool does not stop them from setting
// it again.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/guest-logging-go/logger"
	"github.com/GoogleCloudPlatform/wureset/wupolicy"
	"github.com/tarm/serial"
)

var version = "manual-" + time.Now().Format(time.RFC3339)

var (
	debug        = flag.Bool("debug", false, "set debug log verbosity")
	stdout       = flag.Bool("stdout", true, "log to stdout, disable in environments that capture the event log only")
	serialLog    = flag.String("serial-port", "", "serial device to mirror logs to (e.g. COM1), useful on headless VMs")
	printVersion = flag.Bool("version", false, "print version and exit")
)

type serialPort struct {
	port string
}

func (s *serialPort) Write(b []byte) (int, error) {
	c := &serial.Config{Name: s.port, Baud: 115200}
	p, err := serial.OpenPort(c)
	if err != nil {
		return 0, err
	}
	defer p.Close()

	return p.Write(b)
}

func newLogOpts(debug, stdout bool, serialLog string) logger.LogOpts {
	opts := logger.LogOpts{
		LoggerName:          "WUReset",
		Debug:               debug,
		DisableCloudLogging: true,
	}
	if stdout {
		opts.Writers = append(opts.Writers, os.Stdout)
	}
	if serialLog != "" {
		opts.Writers = append(opts.Writers, &serialPort{serialLog})
	}
	return opts
}

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println(version)
		return
	}
	ctx := context.Background()

	opts := newLogOpts(*debug, *stdout, *serialLog)
	if err := logger.Init(ctx, opts); err != nil {
		fmt.Printf("Error initializing logger: %v", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Debugf("wureset (version %s) starting", version)
	if err := wupolicy.Reset(); err != nil {
		logger.Fatalf("Error resetting Windows Update policy: %v", err)
	}
	logger.Infof("AUOptions reset to default.")
}
