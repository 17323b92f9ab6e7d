package domain

// TakeDamage снимает HP. Возвращает true только в тот момент, когда боец погиб:
// повторные удары по трупу ничего не меняют.
func (f *FighterComponent) TakeDamage(amount int) bool {
	if f.Dead {
		return false
	}
	if amount > 0 {
		f.HP -= amount
	}
	if f.HP <= 0 {
		f.Dead = true
		return true
	}
	return false
}

// Heal лечит не выше MaxHP и возвращает реально восстановленное количество.
func (f *FighterComponent) Heal(amount int) int {
	if f.Dead || amount <= 0 {
		return 0
	}
	before := f.HP
	f.HP = min(f.HP+amount, f.MaxHP)
	return f.HP - before
}

func (f *FighterComponent) AtFullHealth() bool {
	return f.HP >= f.MaxHP
}
