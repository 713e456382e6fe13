package domain

// IsAlive: сущность считается мёртвой при HP < 1
func (s *CombatStats) IsAlive() bool {
	return s.HP > 0
}

// MeleeDamageAgainst считает урон удара по цели: сила минус защита, не меньше нуля
func (s *CombatStats) MeleeDamageAgainst(target *CombatStats) int {
	return max(0, s.Power-target.Defence)
}

// TakeDamage вычитает урон. HP может уйти ниже нуля: смерть
// обрабатывает DeleteTheDead.
func (s *CombatStats) TakeDamage(amount int) {
	s.HP -= amount
}

// Heal лечит сущность, не поднимая HP выше MaxHP.
// HP никогда не уменьшается от лечения.
func (s *CombatStats) Heal(amount int) {
	if amount <= 0 {
		return
	}
	// HP выше максимума (например, после правки шаблона) не режем
	s.HP = max(s.HP, min(s.MaxHP, s.HP+amount))
}

// Merge складывает урон, пришедший за один тик из нескольких источников
func (d *SufferDamage) Merge(amount int) {
	d.Amount += amount
}
