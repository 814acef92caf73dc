// Command taskplot draws a Gantt chart of the tasks in a profiling file.
package main

func main() {
	Execute()
}
