package models

import "fmt"

var NonFiniteParamErr = fmt.Errorf("strategy parameter must be a finite number")
var NegativeSpreadErr = fmt.Errorf("spread must be non negative")
var InvalidIntervalErr = fmt.Errorf("monitor interval must be between 30s and 300s in steps of 30s")
var NoStrategyErr = fmt.Errorf("no strategy has been initialized")
