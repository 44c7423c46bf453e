// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// CostFunc returns the cost of entering h, or false if h is not on the board.
type CostFunc func(h Hex) (int, bool)

// FindPath находит самый дешёвый путь от start до goal (A*).
// Every step costs at least 1, so hex distance stays an admissible heuristic.
func FindPath(start, goal Hex, cost CostFunc) []Hex {
	if _, ok := cost(start); !ok {
		return nil
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Hex: start, Cost: 0, Parent: nil})
	costSoFar := map[Hex]int{start: 0}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Hex == goal {
			return reconstructPath(current)
		}
		if current.Cost-current.Hex.Distance(goal) > costSoFar[current.Hex] {
			continue // устаревшая запись
		}
		for _, neighbor := range current.Hex.AllPossibleNeighbors() {
			stepCost, ok := cost(neighbor)
			if !ok {
				continue
			}
			newCost := costSoFar[current.Hex] + max(stepCost, 1)
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + neighbor.Distance(goal)
				heap.Push(pq, &Node{Hex: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Hex    Hex
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x any) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Hex {
	path := []Hex{}
	for node != nil {
		path = append(path, node.Hex)
		node = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
