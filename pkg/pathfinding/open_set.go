package pathfinding

// node — элемент открытого списка A*.
type node struct {
	idx   int
	f     float64 // g + h
	g     float64 // стоимость пути от старта
	seq   int     // порядок добавления, разрешает ничьи детерминированно
	index int     // индекс в куче
}

// openSet реализует heap.Interface: min-heap по f, затем по seq.
type openSet []*node

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openSet) Push(x any) {
	n := len(*pq)
	item := x.(*node)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}
