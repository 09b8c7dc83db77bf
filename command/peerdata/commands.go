// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/message"
	"github.com/bitmark-inc/peerdata/peer"
	"github.com/bitmark-inc/peerdata/registry"
	"github.com/bitmark-inc/peerdata/timestamp"
)

// page size when none is given
const defaultListCount = 20

// setup command handler
//
// commands that need neither the configuration file nor the
// database, returns false if the command was not handled
func processSetupCommand(program string, arguments []string) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "decode-request", "dreq":
		buffer := hexArgument(command, arguments)
		m, err := message.UnpackRequest(buffer)
		if nil != err {
			exitwithstatus.Message("%s: decode request error: %s", command, err)
		}
		printJson(fmt.Sprintf("%T", m), m)

	case "decode-response", "dres":
		buffer := hexArgument(command, arguments)
		m, err := message.UnpackResponse(buffer, timestamp.Now())
		if nil != err {
			exitwithstatus.Message("%s: decode response error: %s", command, err)
		}
		printJson(fmt.Sprintf("%T", m), m)

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version\n\n")
		fmt.Printf("  add IP:PORT                (a)      - add a peer seen now\n\n")
		fmt.Printf("  touch IP:PORT              (t)      - mark a known peer as seen now\n\n")
		fmt.Printf("  remove IP                  (rm)     - forget a peer\n\n")
		fmt.Printf("  show IP                    (s)      - display a peer\n\n")
		fmt.Printf("  list [SKIP [COUNT]]        (l)      - peers in address order\n\n")
		fmt.Printf("  recent [SKIP [COUNT]]      (r)      - peer addresses, most recently seen first\n\n")
		fmt.Printf("  count                      (c)      - number of entries in each index\n\n")
		fmt.Printf("  reconcile                           - repair the recency index\n\n")
		fmt.Printf("  decode-request HEX         (dreq)   - decode a request frame\n\n")
		fmt.Printf("  decode-response HEX        (dres)   - decode a response frame\n\n")
		fmt.Printf("\n")

	default:
		return false
	}

	return true
}

// commands that do not modify the database
func isReadOnlyCommand(command string) bool {
	switch command {
	case "show", "s", "list", "l", "recent", "r", "count", "c":
		return true
	default:
		return false
	}
}

// data command handler
//
// commands that read or change the peer database
func processDataCommand(log *logger.L, r *registry.Registry, arguments []string) {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "add", "a":
		record := peer.New(addressArgument(command, arguments))
		if err := r.Create(record); nil != err {
			exitwithstatus.Message("%s: %s  error: %s", command, record.Address, err)
		}
		log.Infof("added: %s", record.Address)
		printJson("", record)

	case "touch", "t":
		record := peer.New(addressArgument(command, arguments))
		if err := r.Update(record); nil != err {
			exitwithstatus.Message("%s: %s  error: %s", command, record.Address, err)
		}
		log.Infof("touched: %s", record.Address)
		printJson("", record)

	case "remove", "rm":
		ip := ipArgument(command, arguments)
		a, err := address.New(ip, 0)
		if nil != err {
			exitwithstatus.Message("%s: %s  error: %s", command, ip, err)
		}
		if err := r.Delete(&peer.Record{Address: a}); nil != err {
			exitwithstatus.Message("%s: %s  error: %s", command, ip, err)
		}
		log.Infof("removed: %s", ip)

	case "show", "s":
		ip := ipArgument(command, arguments)
		record, err := r.Get(ip)
		if nil != err {
			exitwithstatus.Message("%s: %s  error: %s", command, ip, err)
		}
		m, err := record.Address.Multiaddr()
		if nil != err {
			exitwithstatus.Message("%s: %s  error: %s", command, ip, err)
		}
		printJson("", struct {
			Record    *peer.Record `json:"record"`
			Multiaddr string       `json:"multiaddr"`
		}{
			Record:    record,
			Multiaddr: m.String(),
		})

	case "list", "l":
		skip, count := pageArguments(command, arguments)
		records, err := r.ListByAddress(skip, count)
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", records)

	case "recent", "r":
		skip, count := pageArguments(command, arguments)
		ips, err := r.ListByRecency(skip, count)
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", ips)

	case "count", "c":
		byAddress, err := r.CountByAddress()
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		byRecency, err := r.CountByRecency()
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", map[string]uint32{
			"byAddress": byAddress,
			"byRecency": byRecency,
		})
		if byAddress != byRecency {
			log.Warnf("index counts differ: address: %d  recency: %d", byAddress, byRecency)
		}

	case "reconcile":
		repair, err := r.Reconcile()
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", repair)

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}
}

func hexArgument(command string, arguments []string) []byte {
	if 1 != len(arguments) {
		exitwithstatus.Message("%s: missing HEX argument", command)
	}
	buffer, err := hex.DecodeString(strings.TrimPrefix(arguments[0], "0x"))
	if nil != err {
		exitwithstatus.Message("%s: hex decode error: %s", command, err)
	}
	return buffer
}

func addressArgument(command string, arguments []string) address.Address {
	if 1 != len(arguments) {
		exitwithstatus.Message("%s: missing IP:PORT argument", command)
	}
	a, err := address.Parse(arguments[0])
	if nil != err {
		exitwithstatus.Message("%s: %q  error: %s", command, arguments[0], err)
	}
	return a
}

func ipArgument(command string, arguments []string) net.IP {
	if 1 != len(arguments) {
		exitwithstatus.Message("%s: missing IP argument", command)
	}
	ip := net.ParseIP(arguments[0])
	if nil == ip {
		exitwithstatus.Message("%s: %q is not an IP address", command, arguments[0])
	}
	return ip
}

// optional skip and count
func pageArguments(command string, arguments []string) (uint32, uint32) {
	values := []uint32{0, defaultListCount}
	if len(arguments) > len(values) {
		exitwithstatus.Message("%s: too many arguments", command)
	}
	for i, s := range arguments {
		n, err := strconv.ParseUint(s, 10, 32)
		if nil != err {
			exitwithstatus.Message("%s: %q is not a number", command, s)
		}
		values[i] = uint32(n)
	}
	return values[0], values[1]
}

// print a value as indented JSON
func printJson(title string, value interface{}) {
	b, err := json.MarshalIndent(value, "", "  ")
	if nil != err {
		exitwithstatus.Message("printjson marshal error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}
