// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package eeprom drives a parallel EEPROM (AT28C16 class) through a serial
// address latch.
//
// The address bus is fed by two cascaded shift registers (74HC595 style):
// sixteen bits are shifted in MSB first on the shift clock, then presented on
// the bus by a pulse of the latch clock. Bit 15 of the latched word drives the
// chip's active-low output enable. The eight data lines are shared between the
// controller and the chip, and switch direction for every transaction.
//
// Writes complete with data polling: after the write pulse the chip presents
// the complement of bit 7 of the written value on I/O 7 until its internal
// write cycle is done.
//
// A Transport is not safe for concurrent use.
package eeprom
