/*
Package domain contains the core value types of the Turing machine simulator.

It defines machine definitions, transition rules, halt reasons and run results,
plus the pure transition table lookup shared by every concurrent run. This
package has no I/O and no third-party dependencies.

# Key Entities

  - Machine: initial head position, initial tape and ordered rule list.
  - Rule: maps (state, symbol read) to (symbol written, move, next state).
  - Result: the final configuration of a single run and why it halted.
  - LifecycleHooks: callbacks used by metrics and logging adapters.
*/
package domain
