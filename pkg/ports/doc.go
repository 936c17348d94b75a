/*
Package ports defines the driven ports (interfaces) around the simulation core.

These interfaces keep the execution engine free of any display, file format or
storage concern, so each can be swapped or replaced by a test double.

# Key Interfaces

  - RenderSink: receives the tape text of a running machine for a fixed row.
  - MachineLoader: produces a machine definition from an input path.
  - ResultStore: persists the final configuration of finished runs.
*/
package ports
