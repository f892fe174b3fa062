package main

import (
	"errors"
	"strconv"
	"strings"

	"memoryflip/internal/flip"
)

// Maps known commands to number of arguments:
//
//	g     get state
//	p x y press (click) at point x:y
//	t n   advance n ticks
var commandNargs = map[string]int{
	"g": 0,
	"p": 2,
	"t": 1,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(g *flip.GameState, c string) (err error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return
	case "p":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		g.Click(flip.Point{X: x, Y: y})
		return nil
	case "t":
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return errors.New("argument must be an int")
		}
		if n < 1 {
			return errors.New("tick count must be positive")
		}
		for range n {
			g.Tick()
		}
		return nil
	}
	return errors.New("invalid command")
}
